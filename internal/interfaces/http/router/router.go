package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bannerstore/internal/interfaces/http/handler"
)

type Handlers struct {
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Statuses *handler.StatusHandler

	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(h.Metrics))
	}

	api := r.Group("/api")
	{
		api.GET("/products/:id", h.Products.GetProduct)
		api.POST("/products/:id/quote", h.Products.Quote)

		api.GET("/order-statuses", h.Statuses.ListStatuses)
		api.GET("/order-statuses/:id", h.Statuses.GetStatus)
		api.GET("/order-pipeline", h.Statuses.Pipeline)

		api.POST("/orders", h.Orders.CreateOrder)
		api.GET("/orders/:id", h.Orders.GetOrder)
		api.GET("/orders/:id/history", h.Orders.History)
		api.POST("/orders/:id/advance", h.Orders.Advance)
		api.POST("/orders/:id/revert", h.Orders.Revert)
		api.POST("/orders/:id/cancel", h.Orders.Cancel)
		api.PUT("/orders/:id/status", h.Orders.AssignStatus)
	}
}
