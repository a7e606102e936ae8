package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform wrapper every API response carries. Status repeats
// the HTTP status code; Data is null on failure.
type Envelope struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
}

func Success(message string, data interface{}) Envelope {
	return Envelope{Message: message, Status: http.StatusOK, Data: data}
}

func Created(message string, data interface{}) Envelope {
	return Envelope{Message: message, Status: http.StatusCreated, Data: data}
}

func NotFound(message string) Envelope {
	return Envelope{Message: message, Status: http.StatusNotFound}
}

func BadRequest(message string) Envelope {
	return Envelope{Message: message, Status: http.StatusBadRequest}
}

func Internal(message string) Envelope {
	return Envelope{Message: message, Status: http.StatusInternalServerError}
}

// JSON writes the envelope with its own status as the HTTP status code.
func JSON(c echo.Context, env Envelope) error {
	return c.JSON(env.Status, env)
}

// ErrorMessage unwraps the human-readable message from bind and validation
// errors, which echo wraps in HTTPError.
func ErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}
	return err.Error()
}
