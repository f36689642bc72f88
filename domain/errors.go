package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrSymbolNotFound will throw if a requested symbol has no stored feed
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrDivisionByZero will throw if a quote price of zero makes the rate undefined
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow will throw if a computed rate exceeds the unsigned 128-bit range
	ErrOverflow = errors.New("rate overflow")
	// ErrLengthMismatch will throw if paired request slices differ in length
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidResolveTime will throw if a relay carries a resolve time older than the stored one
	ErrInvalidResolveTime = errors.New("invalid resolve time")
	// ErrNotRelayer will throw if the caller is not an authorized relayer
	ErrNotRelayer = errors.New("not a relayer")
)

// SymbolNotFoundError names the missing symbol so bulk callers can tell
// which lookup failed. It unwraps to ErrSymbolNotFound.
type SymbolNotFoundError struct {
	Symbol string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Symbol)
}

func (e *SymbolNotFoundError) Unwrap() error {
	return ErrSymbolNotFound
}

// BulkPairError reports the first pair that failed during a bulk
// resolution, keyed by its position in the request. It unwraps to the
// underlying failure so status mapping still works.
type BulkPairError struct {
	Index       int
	BaseSymbol  string
	QuoteSymbol string
	Err         error
}

func (e *BulkPairError) Error() string {
	return fmt.Sprintf("pair %d (%s/%s): %s", e.Index, e.BaseSymbol, e.QuoteSymbol, e.Err)
}

func (e *BulkPairError) Unwrap() error {
	return e.Err
}
