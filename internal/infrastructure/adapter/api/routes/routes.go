package routes

import (
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.GET("", userHandler.ListUsers)
		userRoutes.DELETE("", userHandler.DeleteAllUsers)
		userRoutes.GET("/count", userHandler.CountUsers)
		userRoutes.POST("/upgrade-levels", userHandler.UpgradeLevels)
		userRoutes.GET("/:id", userHandler.GetUser)
		userRoutes.PUT("/:id", userHandler.UpdateUser)
	}
}

// SetupMetricsRoute exposes the prometheus registry on path
func SetupMetricsRoute(router *gin.Engine, path string, gatherer prometheus.Gatherer) {
	router.GET(path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API.
// httpMetrics may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, httpMetrics *middleware.HTTPMetrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if httpMetrics != nil {
		router.Use(middleware.Metrics(httpMetrics))
	}
}
