package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const maxSymbolLen = 32

// IsValidSymbol reports whether a symbol is acceptable on the wire:
// non-empty, bounded, and limited to the plain ASCII charset feeds are
// keyed by. Symbols stay case-sensitive; no normalization happens here.
func IsValidSymbol(symbol string) bool {
	if len(symbol) == 0 || len(symbol) > maxSymbolLen {
		return false
	}
	for _, r := range symbol {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
