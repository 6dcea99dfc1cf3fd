package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "github.com/skillconnect/server/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the error taxonomy onto HTTP statuses:
// validation → 400, not found → 404, unauthorized → 401, anything else → 500.
func RespondServiceError(c *gin.Context, code string, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, code, err)
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, code, err)
	case errors.Is(err, apperr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, code, err)
	default:
		RespondError(c, http.StatusInternalServerError, code, err)
	}
}
