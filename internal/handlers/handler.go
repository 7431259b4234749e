package handlers

import (
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tune the routes that depend on deployment settings.
type Options struct {
	// BackendURL is the parking backend root that /captures is proxied to.
	// Empty disables the proxy.
	BackendURL string
	// AuthEnabled puts a bearer token in front of every mutating route.
	AuthEnabled bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	page     *pageRenderer
	// boot identifies this process to open pages; board versions restart with it.
	boot string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts, page: newPageRenderer(), boot: uuid.NewString()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// System endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Any("/captures/*file", h.captureProxy())

	// Kiosk page and its board stream
	router.GET("/", h.dashboard)
	router.GET("/assets/dashboard.js", h.dashboardScript)
	router.GET("/ws", h.wsConnect)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

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
	api := r.Group("/api/v1")
	{
		api.GET("/board", h.getBoard)
		h.registerHistoryRoutes(api)
		h.registerVehicleRoutes(api)
		h.registerControlRoutes(api)
		h.registerJournalRoutes(api)
	}
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	history := api.Group("/history")
	{
		history.POST("", h.guard(), h.getHistory)
		history.POST("/search", h.guard(), h.searchHistory)
		history.POST("/reset", h.guard(), h.resetHistory)
	}
	api.POST("/revenue/:period", h.guard(), h.fetchRevenue)
}

func (h *Handler) registerVehicleRoutes(api *gin.RouterGroup) {
	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", h.listVehicles)
		// Body example: {"plate":"30A-12345","owner":"Nguyen Van A","type":"Car"}
		vehicles.POST("", h.guard(), h.addVehicle)
		vehicles.DELETE("/:plate", h.guard(), h.removeVehicle)
	}
}

func (h *Handler) registerControlRoutes(api *gin.RouterGroup) {
	api.POST("/control/:action", h.guard(), h.triggerControl)
}

func (h *Handler) registerJournalRoutes(api *gin.RouterGroup) {
	api.GET("/journal", h.guard(), h.getJournal)
}
