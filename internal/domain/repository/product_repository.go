package repository

import (
	"context"

	"bannerstore/internal/domain/catalog"
)

// ProductRepository returns a nil product and nil error from FindByID when
// the id does not exist.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	Upsert(ctx context.Context, product *catalog.Product) error
}
