package employee

import (
	"go-roster/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	gate middleware.SessionGate,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.RequireSession(gate))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/report", middleware.RateLimitByUser(1, 5), handler.Report)
		employees.GET("/:id", handler.GetById)

		employees.POST("", middleware.RateLimitByUser(5, 10), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByUser(5, 10), handler.Update)
		employees.PATCH("/:id/status", middleware.RateLimitByUser(5, 10), handler.UpdateStatus)
		employees.DELETE("/:id", middleware.RateLimitByUser(5, 10), handler.Delete)
	}
}
