package pricing

import (
	"context"
	"errors"
	"fmt"

	"bannerstore/internal/domain/catalog"
	"bannerstore/internal/domain/repository"
	"bannerstore/internal/infrastructure/metrics"
	"bannerstore/pkg/logger"
)

// ErrIncompleteConfiguration means the selection does not resolve to a size
// and a material of the product. Callers should re-prompt the customer.
var ErrIncompleteConfiguration = errors.New("product configuration is incomplete")

type Service struct {
	products repository.ProductRepository
	metrics  *metrics.Registry
	log      logger.Logger
}

func NewService(products repository.ProductRepository, m *metrics.Registry, log logger.Logger) *Service {
	return &Service{products: products, metrics: m, log: log}
}

// Product loads a product definition for the configurator. Products
// deactivated in the back office are reported as ErrProductInactive.
func (s *Service) Product(ctx context.Context, productID string) (*catalog.Product, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", productID, err)
	}
	if p == nil {
		return nil, catalog.ErrProductNotFound
	}
	if !p.Active {
		return nil, catalog.ErrProductInactive
	}
	return p, nil
}

// Quote prices sel against the stored definition of productID.
func (s *Service) Quote(ctx context.Context, productID string, sel catalog.Selection) (catalog.PriceBreakdown, error) {
	log := s.log.WithContext(ctx).WithFields(logger.String("product_id", productID))

	p, err := s.Product(ctx, productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		s.metrics.Quotes.WithLabelValues(metrics.QuoteNotFound).Inc()
		return catalog.PriceBreakdown{}, err
	}
	if errors.Is(err, catalog.ErrProductInactive) {
		s.metrics.Quotes.WithLabelValues(metrics.QuoteInactive).Inc()
		return catalog.PriceBreakdown{}, err
	}
	if err != nil {
		log.Error("quote failed", logger.Error(err))
		return catalog.PriceBreakdown{}, err
	}

	breakdown, ok := catalog.CalculatePrice(*p, sel)
	if !ok {
		s.metrics.Quotes.WithLabelValues(metrics.QuoteIncomplete).Inc()
		log.Debug("quote incomplete",
			logger.String("size_id", sel.SizeID),
			logger.String("material_id", sel.MaterialID),
		)
		return catalog.PriceBreakdown{}, ErrIncompleteConfiguration
	}

	s.metrics.Quotes.WithLabelValues(metrics.QuoteOK).Inc()
	s.metrics.QuoteTotal.Observe(breakdown.Total)
	log.Debug("quote served",
		logger.Int("quantity", breakdown.Quantity),
		logger.Float64("total", breakdown.Total),
	)
	return breakdown, nil
}
