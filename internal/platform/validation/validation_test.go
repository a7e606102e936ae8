package validation

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type pastDateBody struct {
	Date string `validate:"required,pastdate"`
}

type futureDateBody struct {
	Date string `validate:"required,todayorfuture"`
}

func TestPastDate(t *testing.T) {
	v := New()

	if err := v.Validate(&pastDateBody{Date: "1990-05-01"}); err != nil {
		t.Errorf("expected past date to pass, got %v", err)
	}

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(DateLayout)
	if err := v.Validate(&pastDateBody{Date: tomorrow}); err == nil {
		t.Error("expected future date to fail pastdate")
	}

	today := time.Now().UTC().Format(DateLayout)
	if err := v.Validate(&pastDateBody{Date: today}); err == nil {
		t.Error("expected today to fail pastdate")
	}

	if err := v.Validate(&pastDateBody{Date: "not-a-date"}); err == nil {
		t.Error("expected malformed date to fail")
	}
}

func TestTodayOrFuture(t *testing.T) {
	v := New()

	today := time.Now().UTC().Format(DateLayout)
	if err := v.Validate(&futureDateBody{Date: today}); err != nil {
		t.Errorf("expected today to pass, got %v", err)
	}

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(DateLayout)
	if err := v.Validate(&futureDateBody{Date: tomorrow}); err != nil {
		t.Errorf("expected tomorrow to pass, got %v", err)
	}

	if err := v.Validate(&futureDateBody{Date: "2000-01-01"}); err == nil {
		t.Error("expected past date to fail todayorfuture")
	}
}

func TestValidateReturnsHTTPError(t *testing.T) {
	v := New()

	err := v.Validate(&pastDateBody{})
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != 400 {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}
