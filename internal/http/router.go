package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"multi_accessor/internal/config"
	"multi_accessor/internal/http/controller"
	"multi_accessor/internal/http/middleware"
	"multi_accessor/internal/metrics"
)

// NewRouter builds the read-only admin surface. It is only served when
// ADMIN_ADDR is set.
func NewRouter(cfg *config.Config, handler *controller.Handler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.AdminAddr == "" && gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(200)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/instances/:id", handler.GetInstance)

	return router
}
