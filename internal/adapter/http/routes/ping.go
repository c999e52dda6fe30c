package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the health check payload.
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// ping is the liveness probe used by the load balancer and compose healthcheck.
//
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200 {object} PingResponse
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}
