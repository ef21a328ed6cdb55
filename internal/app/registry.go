package app

import (
	"context"
	"net/http"
	"time"

	"go-roster/internal/auth"
	"go-roster/internal/employee"
	"go-roster/internal/middleware"
	"go-roster/internal/shared/response"
	"go-roster/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type modules struct {
	kv         storage.KV
	publisher  employee.EventPublisher
	loginDelay time.Duration
	driver     string
}

func registerModules(ctx context.Context, router *gin.Engine, m modules) error {
	logger := zap.L()

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(reg)
	router.Use(middleware.RequestID(), httpMetrics.Handler())

	// --- Repositories ---
	fixture, err := employee.DefaultFixture()
	if err != nil {
		return err
	}
	employeeRepo := employee.NewRepository(m.kv, fixture)
	sessionRepo := auth.NewSessionRepository(m.kv)

	// --- Services ---
	authService, err := auth.NewService(ctx, sessionRepo,
		auth.WithLoginDelay(m.loginDelay),
		auth.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	employeeService := employee.NewService(employeeRepo, m.publisher, logger)
	if err := employeeService.Initialize(ctx); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "storage": m.driver}, nil)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authService)
		employee.RegisterRoutes(api, employeeHandler, authService, logger)
	}

	return nil
}
