package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bannerstore/internal/domain/catalog"
	"bannerstore/pkg/logger"
	"bannerstore/pkg/money"
)

type PricingService interface {
	Product(ctx context.Context, productID string) (*catalog.Product, error)
	Quote(ctx context.Context, productID string, sel catalog.Selection) (catalog.PriceBreakdown, error)
}

type ProductHandler struct {
	svc PricingService
	log logger.Logger
}

func NewProductHandler(svc PricingService, log logger.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

type quoteResponse struct {
	Breakdown catalog.PriceBreakdown `json:"breakdown"`
	Display   map[string]string      `json:"display"`
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.svc.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Quote prices the posted selection. The raw breakdown is returned
// unrounded; display carries the two-decimal strings for rendering.
func (h *ProductHandler) Quote(c *gin.Context) {
	var sel catalog.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.svc.Quote(c.Request.Context(), c.Param("id"), sel)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quoteResponse{Breakdown: b, Display: displayBreakdown(b)})
}

func displayBreakdown(b catalog.PriceBreakdown) map[string]string {
	return map[string]string{
		"basePrice":       money.Format(b.BasePrice),
		"unitPrice":       money.Format(b.UnitPrice),
		"subtotal":        money.Format(b.Subtotal),
		"rushFee":         money.Format(b.RushFee),
		"addonsTotal":     money.Format(b.AddonsTotal),
		"total":           money.Format(b.Total),
		"savings":         money.Format(b.Savings),
		"discountPercent": money.Percent(b.DiscountPercent),
	}
}
