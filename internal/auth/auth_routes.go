package auth

import (
	"go-roster/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, gate middleware.SessionGate) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.RequireSession(gate), handler.Me)
	}
}
