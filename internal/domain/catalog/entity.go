package catalog

import "time"

// Option is one selectable choice of a product (size, material, finishing, addon).
type Option struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Price Price  `json:"price" yaml:"price"`
}

// LeadTime is a production turnaround choice; its price is the rush fee.
type LeadTime struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Price Price  `json:"price" yaml:"price"`
	Days  int    `json:"days" yaml:"days"`
}

// Tier is a quantity bracket. A nil MaxQty means the bracket is unbounded.
type Tier struct {
	MinQty          int     `json:"minQty" yaml:"min_qty"`
	MaxQty          *int    `json:"maxQty" yaml:"max_qty"`
	DiscountPercent float64 `json:"discountPercent" yaml:"discount_percent"`
}

// Matches reports whether quantity falls inside the bracket.
func (t Tier) Matches(quantity int) bool {
	if quantity < t.MinQty {
		return false
	}
	return t.MaxQty == nil || quantity <= *t.MaxQty
}

type Product struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Slug        string     `json:"slug,omitempty" yaml:"slug,omitempty"`
	CategoryID  string     `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	BasePrice   Price      `json:"base_price" yaml:"base_price"`
	Sizes       []Option   `json:"sizes" yaml:"sizes"`
	Materials   []Option   `json:"materials" yaml:"materials"`
	Finishings  []Option   `json:"finishings" yaml:"finishings"`
	LeadTimes   []LeadTime `json:"lead_times" yaml:"lead_times"`
	TierPricing []Tier     `json:"tier_pricing" yaml:"tier_pricing"`
	Addons      []Option   `json:"addons" yaml:"addons"`
	Active      bool       `json:"is_active" yaml:"is_active"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"-"`
}

// Selection is what a customer picked on the product configurator.
type Selection struct {
	SizeID       string   `json:"sizeId"`
	MaterialID   string   `json:"materialId"`
	FinishingIDs []string `json:"finishingIds,omitempty"`
	LeadTimeID   string   `json:"leadTimeId,omitempty"`
	Quantity     int      `json:"quantity"`
	AddonIDs     []string `json:"addonIds,omitempty"`
}

// PriceBreakdown is derived on every call and never stored by the engine.
type PriceBreakdown struct {
	BasePrice       float64 `json:"basePrice"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	RushFee         float64 `json:"rushFee"`
	AddonsTotal     float64 `json:"addonsTotal"`
	Total           float64 `json:"total"`
	DiscountPercent float64 `json:"discountPercent"`
	Savings         float64 `json:"savings"`
}

func findOption(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func findLeadTime(lts []LeadTime, id string) (LeadTime, bool) {
	for _, lt := range lts {
		if lt.ID == id {
			return lt, true
		}
	}
	return LeadTime{}, false
}
