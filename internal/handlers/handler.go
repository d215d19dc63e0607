package handlers

import (
	"betterrest/internal/estimator"
	"betterrest/internal/logger"
	"betterrest/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	clock    estimator.Clock // used when the request names no locale
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, defaultClock estimator.Clock) *Handler {
	return &Handler{services: services, log: log, clock: defaultClock}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live preview over WebSocket, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerFormRoutes(api)
		h.registerBedtimeRoutes(api)
	}
}

func (h *Handler) registerFormRoutes(api *gin.RouterGroup) {
	form := api.Group("/form")
	{
		form.GET("", h.getForm)
		form.PUT("", h.replaceForm)
		// Body example: {"steps":-1}
		form.POST("/sleep/step", h.stepSleep)
		form.POST("/coffee/step", h.stepCoffee)
	}
}

func (h *Handler) registerBedtimeRoutes(api *gin.RouterGroup) {
	bedtime := api.Group("/bedtime")
	{
		bedtime.POST("/calculate", h.calculate)
		bedtime.GET("/history", h.getHistory)
	}
}
