package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ErrorMessage is the body of every failed request.
type ErrorMessage struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrInvalidNotation):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrInvalidMove),
		errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrNotYourTurn),
		errors.Is(err, errors.ErrInvalidPlace):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrInvalidOperation):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func pushError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = http.StatusText(code)
	}
	c.JSON(code, &ErrorMessage{Message: msg, Code: code})
}

func pushBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, &ErrorMessage{Message: err.Error(), Code: http.StatusBadRequest})
}
