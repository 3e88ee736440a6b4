package app

import (
	"github.com/gin-gonic/gin"

	"StorefrontPayments/pkg/logger"
	"StorefrontPayments/pkg/metrics"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(metrics.GinMiddleware(), logger.CorrelationMiddleware(), l.GinBodyLogger(), gin.Recovery())
	return engine
}
