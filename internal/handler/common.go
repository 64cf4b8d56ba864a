package handler // handler defines http handlers

import (
	"errors"       // errors provides sentinel comparison via errors.Is
	"net/http"     // net/http defines status code constants
	"strconv"      // strconv converts strings to numeric types

	"github.com/go-playground/validator/v10" // validator enforces struct tags on request DTOs
	"github.com/labstack/echo/v4"            // echo defines request context types

	"github.com/iliyamo/hostel-hub/internal/engine" // engine exposes the data-layer sentinels
)

// Validator adapts go-playground/validator to echo's Validator interface so
// handlers can call c.Validate on bound request bodies.
type Validator struct {
	v *validator.Validate
}

// NewValidator constructs the shared request validator.
func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// claimUint extracts a numeric identity claim from echo.Context and
// converts it to uint64.  JWT claims decode as float64, so every numeric
// shape the token layer may produce is accepted.
func claimUint(c echo.Context, key string) (uint64, error) {
	v := c.Get(key)
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid " + key + " in context")
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// engineError translates the engine's sentinel errors into JSON responses.
// Constraint and capacity violations are recoverable, user-visible
// rejections; anything unrecognized is an internal error.
func engineError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrDuplicateKey):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrCapacityExceeded):
		return c.JSON(http.StatusConflict, echo.Map{"error": "this room is already at full capacity"})
	case errors.Is(err, engine.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
