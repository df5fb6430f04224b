package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyretail/handlers"
)

// RegisterShoppingRoutes registers all endpoints for the offer engine.
func RegisterShoppingRoutes(r *gin.Engine, h *handlers.ShoppingHandler) {
	api := r.Group("/api/shopping")
	{
		api.POST("/responses", h.IngestResponse)
		api.GET("/sessions/:sessionID", h.GetSession)
		api.DELETE("/sessions/:sessionID", h.CancelSession)
		api.PUT("/sessions/:sessionID/selection", h.UpdateSelection)
		api.POST("/sessions/:sessionID/seats", h.SelectSeat)
		api.POST("/sessions/:sessionID/seats/auto", h.AutoAssignSeats)
		api.POST("/sessions/:sessionID/price-request", h.BuildPriceRequest)
		api.POST("/sessions/:sessionID/strip-category", h.StripCategory)
	}
}

// RegisterRoutes wires global middleware and every route group.
func RegisterRoutes(r *gin.Engine, h *handlers.ShoppingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShoppingRoutes(r, h)

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
