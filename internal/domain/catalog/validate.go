package catalog

import (
	"errors"
	"fmt"
)

// Validate checks a product the way the back-office does before saving it.
// CalculatePrice never calls it: a product that fails validation can still
// be priced.
func (p Product) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, ErrMissingID)
	}
	if p.BasePrice.Value() < 0 {
		errs = append(errs, fmt.Errorf("base_price: %w", ErrNegativePrice))
	}

	errs = append(errs, validateOptions("sizes", p.Sizes)...)
	errs = append(errs, validateOptions("materials", p.Materials)...)
	errs = append(errs, validateOptions("finishings", p.Finishings)...)
	errs = append(errs, validateOptions("addons", p.Addons)...)

	seen := make(map[string]struct{}, len(p.LeadTimes))
	for _, lt := range p.LeadTimes {
		if _, dup := seen[lt.ID]; dup {
			errs = append(errs, fmt.Errorf("lead_times %q: %w", lt.ID, ErrDuplicateOption))
		}
		seen[lt.ID] = struct{}{}
		if lt.Price.Value() < 0 {
			errs = append(errs, fmt.Errorf("lead_times %q: %w", lt.ID, ErrNegativePrice))
		}
	}

	for i, t := range p.TierPricing {
		if t.MinQty < 1 || (t.MaxQty != nil && *t.MaxQty < t.MinQty) {
			errs = append(errs, fmt.Errorf("tier_pricing[%d]: %w", i, ErrInvalidTier))
		}
		if t.DiscountPercent < 0 || t.DiscountPercent > 100 {
			errs = append(errs, fmt.Errorf("tier_pricing[%d]: %w", i, ErrInvalidDiscount))
		}
	}
	for _, pair := range p.OverlappingTiers() {
		errs = append(errs, fmt.Errorf("tier_pricing[%d] and [%d]: %w", pair[0], pair[1], ErrOverlappingTiers))
	}

	return errors.Join(errs...)
}

// OverlappingTiers returns the index pairs of tiers whose ranges intersect.
func (p Product) OverlappingTiers() [][2]int {
	var out [][2]int
	for i := 0; i < len(p.TierPricing); i++ {
		for j := i + 1; j < len(p.TierPricing); j++ {
			if tiersOverlap(p.TierPricing[i], p.TierPricing[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

func tiersOverlap(a, b Tier) bool {
	// a starts after b ends, or b starts after a ends
	if b.MaxQty != nil && a.MinQty > *b.MaxQty {
		return false
	}
	if a.MaxQty != nil && b.MinQty > *a.MaxQty {
		return false
	}
	return true
}

func validateOptions(field string, opts []Option) []error {
	var errs []error
	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		if _, dup := seen[o.ID]; dup {
			errs = append(errs, fmt.Errorf("%s %q: %w", field, o.ID, ErrDuplicateOption))
		}
		seen[o.ID] = struct{}{}
		if o.Price.Value() < 0 {
			errs = append(errs, fmt.Errorf("%s %q: %w", field, o.ID, ErrNegativePrice))
		}
	}
	return errs
}
