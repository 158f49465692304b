package v1

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	incidents := api.Group("/incidents")
	{
		incidents.POST("", RateLimitMiddleware(h.cfg.ReportRateLimitRPS), h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/recent", h.recentIncidents)
		incidents.GET("/markers", h.incidentMarkers)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
	}

	// Мастер отправки сообщения
	reports := api.Group("/reports")
	{
		reports.POST("/steps/:step/validate", h.validateStep)
		reports.POST("/steps/:step/back", h.previousStep)
		reports.GET("/location", h.resolveLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// NewRouter собирает gin.Engine: middleware, API v1, /metrics и Swagger UI
func (h *Handler) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(h.logger))
	router.Use(cors.New(corsConfig(h.cfg.CORSAllowOrigins)))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	h.RegisterRoutes(router.Group("/api/v1"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// corsConfig: "*" в списке разрешает любой источник
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
