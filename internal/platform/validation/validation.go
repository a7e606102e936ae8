// Package validation wires go-playground/validator into echo so handlers can
// call c.Validate on bound request bodies.
package validation

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Validator adapts a validator.Validate instance to echo's Validator
// interface.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom date rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("pastdate", pastDate)
	v.RegisterValidation("todayorfuture", todayOrFuture)

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Constraint violations surface as a 400
// with the validator's message so handlers can simply return the error.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// pastDate passes when the field holds a date strictly before today.
func pastDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	today := truncateToDay(time.Now())
	return d.Before(today)
}

// todayOrFuture passes when the field holds today's date or a later one.
func todayOrFuture(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	today := truncateToDay(time.Now())
	return !d.Before(today)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
