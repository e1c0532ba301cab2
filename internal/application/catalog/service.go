package catalog

import (
	"context"
	"fmt"

	domain "bannerstore/internal/domain/catalog"
	"bannerstore/internal/infrastructure/metrics"
	"bannerstore/pkg/logger"
)

// ProductSource abstracts where product definitions come from (YAML file or
// the hosted backend) so imports are easy to test.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

type ProductWriter interface {
	Upsert(ctx context.Context, product *domain.Product) error
}

type Service struct {
	source  ProductSource
	writer  ProductWriter
	metrics *metrics.Registry
	log     logger.Logger
}

// ImportResult counts what an import did. Rejected maps product id (or
// position, for products without one) to the validation error. Products
// holds the stored products in source order.
type ImportResult struct {
	Imported int
	Rejected map[string]error
	Products []domain.Product
}

func NewService(source ProductSource, writer ProductWriter, m *metrics.Registry, log logger.Logger) *Service {
	return &Service{
		source:  source,
		writer:  writer,
		metrics: m,
		log:     log,
	}
}

// Import validates every fetched product and upserts the valid ones.
// Invalid products are reported, not fatal; a write failure aborts.
func (s *Service) Import(ctx context.Context) (ImportResult, error) {
	res := ImportResult{Rejected: make(map[string]error)}

	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch products: %w", err)
	}

	for i := range products {
		p := &products[i]
		if err := p.Validate(); err != nil {
			key := p.ID
			if key == "" {
				key = fmt.Sprintf("#%d", i)
			}
			res.Rejected[key] = err
			s.metrics.ProductsImported.WithLabelValues("rejected").Inc()
			s.log.Warn("product rejected", logger.String("product_id", key), logger.Error(err))
			continue
		}

		if err := s.writer.Upsert(ctx, p); err != nil {
			return res, fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
		res.Imported++
		res.Products = append(res.Products, *p)
		s.metrics.ProductsImported.WithLabelValues("imported").Inc()
	}
	return res, nil
}
