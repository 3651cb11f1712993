package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hunttrack/internal/platform/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func statusOf(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsStorage(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	body := errorBody{Error: err.Error()}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		body.Field = verr.Field
	}
	status := statusOf(err)
	if status >= 500 && !apperrors.IsStorage(err) {
		body.Error = "internal error"
	}
	c.AbortWithStatusJSON(status, body)
}

func badJSON(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "invalid JSON body: " + err.Error()})
}
