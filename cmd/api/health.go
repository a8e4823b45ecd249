package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the liveness reply.
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// handlePing godoc
// @Summary Liveness check
// @Description Reports that the fire monitor API is accepting requests. Upstream geocoder and incident feed are not contacted.
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
