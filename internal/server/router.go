// Package server exposes the portal state over HTTP for the web frontend.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Handlers         *Handlers
	AllowedOrigins   []string
	AllowCredentials bool
}

// NewRouter wires the HTTP routes exposed by the portal backend.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	if len(deps.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.AllowedOrigins
		corsCfg.AllowCredentials = deps.AllowCredentials
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		engine.Use(cors.New(corsCfg))
	}

	h := deps.Handlers
	engine.GET("/healthz", h.health)

	api := engine.Group("/api")
	{
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)
		api.GET("/auth/session", h.session)

		api.GET("/customers", h.listCustomers)
		api.GET("/customers/:id", h.getCustomer)
		api.POST("/customers/:id/notes", h.addCustomerNote)
		api.GET("/customers/:id/analysis", h.analyzeCustomer)

		api.GET("/transactions", h.listTransactions)
		api.POST("/transactions", h.createTransaction)

		api.GET("/queue", h.listQueue)
		api.POST("/queue", h.addQueueItem)
		api.POST("/queue/next", h.callNext)
		api.POST("/queue/complete", h.completeCurrent)

		api.GET("/products", h.listProducts)

		api.GET("/cards", h.listCards)
		api.PATCH("/cards/:id/status", h.setCardStatus)

		api.GET("/loans", h.listLoans)
		api.POST("/loans/calculator", h.calculateLoan)

		api.POST("/scenarios", h.loadScenario)
	}

	return engine
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
