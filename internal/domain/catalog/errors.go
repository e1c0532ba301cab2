package catalog

import "errors"

var (
	ErrMissingID        = errors.New("product id is required")
	ErrDuplicateOption  = errors.New("duplicate option id")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrInvalidTier      = errors.New("invalid tier range")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100")
	ErrOverlappingTiers = errors.New("tiers overlap")
	ErrProductNotFound  = errors.New("product not found")
	ErrProductInactive  = errors.New("product is not available")
)
