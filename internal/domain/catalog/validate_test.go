package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate_OK(t *testing.T) {
	p := bannerProduct()
	p.TierPricing = []Tier{
		{MinQty: 1, MaxQty: intPtr(9), DiscountPercent: 0},
		{MinQty: 10, MaxQty: intPtr(49), DiscountPercent: 10},
		{MinQty: 50, MaxQty: nil, DiscountPercent: 20},
	}

	assert.NoError(t, p.Validate())
}

func TestProduct_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
		want   error
	}{
		{name: "missing id", mutate: func(p *Product) { p.ID = "" }, want: ErrMissingID},
		{name: "negative base", mutate: func(p *Product) { p.BasePrice = P(-1) }, want: ErrNegativePrice},
		{name: "negative addon", mutate: func(p *Product) { p.Addons[0].Price = P(-5) }, want: ErrNegativePrice},
		{name: "duplicate size", mutate: func(p *Product) { p.Sizes[1].ID = p.Sizes[0].ID }, want: ErrDuplicateOption},
		{name: "duplicate lead time", mutate: func(p *Product) { p.LeadTimes[1].ID = "standard" }, want: ErrDuplicateOption},
		{name: "zero min qty", mutate: func(p *Product) { p.TierPricing[0].MinQty = 0 }, want: ErrInvalidTier},
		{
			name:   "max below min",
			mutate: func(p *Product) { p.TierPricing = []Tier{{MinQty: 10, MaxQty: intPtr(5)}} },
			want:   ErrInvalidTier,
		},
		{name: "discount over 100", mutate: func(p *Product) { p.TierPricing[0].DiscountPercent = 120 }, want: ErrInvalidDiscount},
		{
			name: "overlap",
			mutate: func(p *Product) {
				p.TierPricing = []Tier{
					{MinQty: 1, MaxQty: intPtr(10), DiscountPercent: 10},
					{MinQty: 5, MaxQty: intPtr(20), DiscountPercent: 20},
				}
			},
			want: ErrOverlappingTiers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := bannerProduct()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), tt.want)
		})
	}
}

func TestProduct_OverlappingTiers(t *testing.T) {
	tests := []struct {
		name  string
		tiers []Tier
		want  [][2]int
	}{
		{
			name:  "disjoint",
			tiers: []Tier{{MinQty: 1, MaxQty: intPtr(4)}, {MinQty: 5, MaxQty: nil}},
			want:  nil,
		},
		{
			name:  "touching bounds overlap",
			tiers: []Tier{{MinQty: 1, MaxQty: intPtr(5)}, {MinQty: 5, MaxQty: intPtr(9)}},
			want:  [][2]int{{0, 1}},
		},
		{
			name:  "two unbounded",
			tiers: []Tier{{MinQty: 10}, {MinQty: 100}},
			want:  [][2]int{{0, 1}},
		},
		{
			name:  "unbounded before bounded",
			tiers: []Tier{{MinQty: 50}, {MinQty: 1, MaxQty: intPtr(49)}, {MinQty: 40, MaxQty: intPtr(60)}},
			want:  [][2]int{{0, 2}, {1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{ID: "p", TierPricing: tt.tiers}
			assert.Equal(t, tt.want, p.OverlappingTiers())
		})
	}
}
