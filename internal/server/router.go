package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter: 운영용 엔드포인트를 서빙하는 Gin 라우터를 설정합니다.
func NewRouter(logger *slog.Logger, handler *OpsHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger, "/healthz"))

	router.GET("/healthz", handler.Health)

	api := router.Group("/api")
	{
		api.GET("/stats", handler.GetStats)
	}

	return router
}
