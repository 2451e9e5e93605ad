package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Health probe
// @Tags         health
// @Produce      json
// @Success      200 {object} StatusResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
