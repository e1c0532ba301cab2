package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "bannerstore/internal/application/order"
	"bannerstore/internal/domain/catalog"
	domain "bannerstore/internal/domain/order"
	"bannerstore/pkg/logger"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, cmd app.PlaceOrderCommand) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Advance(ctx context.Context, id string) (*domain.Order, error)
	Revert(ctx context.Context, id string) (*domain.Order, error)
	Cancel(ctx context.Context, id string) (*domain.Order, error)
	Assign(ctx context.Context, id string, status domain.StatusID) (*domain.Order, error)
	History(ctx context.Context, id string) ([]domain.HistoryEntry, error)
}

type OrderHandler struct {
	svc OrderService
	log logger.Logger
}

func NewOrderHandler(svc OrderService, log logger.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

type orderResponse struct {
	ID         string                 `json:"id"`
	CustomerID string                 `json:"customer_id"`
	ProductID  string                 `json:"product_id"`
	Selection  catalog.Selection      `json:"selection"`
	Breakdown  catalog.PriceBreakdown `json:"breakdown"`
	Status     domain.StatusMeta      `json:"status"`
	Next       *domain.StatusID       `json:"next_status"`
	Previous   *domain.StatusID       `json:"previous_status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	meta, ok := domain.DisplayStatus(o.Status)
	if !ok {
		meta = domain.StatusMeta{ID: o.Status, Label: o.Status.String()}
	}
	resp := orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Selection:  o.Selection,
		Breakdown:  o.Breakdown,
		Status:     meta,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if !domain.IsTerminal(o.Status) {
		if next, ok := domain.NextStatus(o.Status); ok {
			resp.Next = &next
		}
		if prev, ok := domain.PreviousStatus(o.Status); ok {
			resp.Previous = &prev
		}
	}
	return resp
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var cmd app.PlaceOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.svc.PlaceOrder(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(o))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) History(c *gin.Context) {
	entries, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *OrderHandler) Advance(c *gin.Context) {
	h.transition(c, h.svc.Advance)
}

func (h *OrderHandler) Revert(c *gin.Context) {
	h.transition(c, h.svc.Revert)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.svc.Cancel)
}

type assignStatusRequest struct {
	Status domain.StatusID `json:"status" binding:"required"`
}

func (h *OrderHandler) AssignStatus(c *gin.Context) {
	var req assignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.transition(c, func(ctx context.Context, id string) (*domain.Order, error) {
		return h.svc.Assign(ctx, id, req.Status)
	})
}

func (h *OrderHandler) transition(c *gin.Context, fn func(context.Context, string) (*domain.Order, error)) {
	o, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}
