package main

import (
	"net/http"

	"fire-monitor/internal/types"

	"github.com/gin-gonic/gin"
)

const kindInvalidRequest = "invalid_request"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Kind    string `json:"kind" example:"not_found"`
	Detail  string `json:"detail" example:"no records for postal code \"00000\""`
	Message string `json:"message" example:"Fire monitor is not supported in your current location."`
}

func statusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.KindInvalidArgument:
		return http.StatusBadRequest
	case types.KindUnsupportedCountry:
		return http.StatusUnprocessableEntity
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindTransport, types.KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (app *App) writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Kind:    kindInvalidRequest,
		Detail:  err.Error(),
		Message: invalidRequestMessage,
	})
}

func (app *App) writeServiceError(c *gin.Context, err error) {
	kind := types.KindOf(err)
	status := statusForKind(kind)

	if status >= http.StatusInternalServerError {
		app.logger.Error("fire lookup failed",
			"request_id", c.GetString(requestIDKey),
			"kind", kind.String(),
			"error", err,
		)
	}

	c.JSON(status, ErrorResponse{
		Kind:    kind.String(),
		Detail:  err.Error(),
		Message: errorMessage(kind),
	})
}
