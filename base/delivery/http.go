package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes the standard response envelope. Domain errors
// override the caller-provided status so handlers can pass a generic 500
// and still surface the right code.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) || errors.Is(err, domain.ErrSymbolNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrLengthMismatch) || errors.Is(err, domain.ErrBadParamInput) ||
			errors.Is(err, domain.ErrInvalidNumberFormat) || errors.Is(err, domain.ErrInvalidResolveTime):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrDivisionByZero) || errors.Is(err, domain.ErrOverflow):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrNotRelayer):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrConflict):
			status = http.StatusConflict
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
