package handlers

import (
	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

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

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live spending summary over WebSocket — same port
	router.GET("/ws", h.wsSummary)

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
		h.registerExpenseRoutes(api)
	}
}

func (h *Handler) registerExpenseRoutes(api *gin.RouterGroup) {
	expenses := api.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		// Query: category?, filter?(week|month|3months|custom), startDate?, endDate?
		expenses.GET("", h.listExpenses)
		expenses.PATCH("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}
