package handlers

import (
	"heating_advisor/internal/logger"
	"heating_advisor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live recommendation session over the same port.
	router.GET("/ws/recommend", h.wsRecommend)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUpAuthMiddleware, h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/catalog/devices", h.listDevices)
		api.GET("/estimate", h.estimate)
		// Body example: {"inputs":{"area":"120","insulation":"Vidutinė (B/C)"},"sort":"best"}
		api.POST("/recommendations", h.recommend)

		h.registerAdminRoutes(api)
	}
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.adminAuthMiddleware)
	{
		admin.PUT("/catalog", h.importCatalog)
		admin.POST("/catalog/reload", h.reloadCatalog)
		admin.GET("/logs", h.getLogs)
	}
}
