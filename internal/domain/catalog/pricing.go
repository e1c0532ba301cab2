package catalog

// CalculatePrice prices a selection against a product definition.
//
// ok is false when the size or the material cannot be resolved; callers
// should ask the customer to finish configuring rather than treat it as a
// failure. Unknown finishing and addon ids are skipped. A quantity below 1
// is priced as 1. Tiers are tried in stored order and the first match wins.
//
// The function only reads its arguments and is safe for concurrent use.
func CalculatePrice(product Product, sel Selection) (PriceBreakdown, bool) {
	size, ok := findOption(product.Sizes, sel.SizeID)
	if !ok {
		return PriceBreakdown{}, false
	}
	material, ok := findOption(product.Materials, sel.MaterialID)
	if !ok {
		return PriceBreakdown{}, false
	}

	quantity := sel.Quantity
	if quantity < 1 {
		quantity = 1
	}

	basePrice := product.BasePrice.Value()
	if size.Price.IsSet() {
		basePrice = size.Price.Value()
	}
	basePrice += material.Price.Value()

	for _, id := range sel.FinishingIDs {
		if f, ok := findOption(product.Finishings, id); ok {
			basePrice += f.Price.Value()
		}
	}

	discount := 0.0
	if tier, ok := ApplicableTier(product.TierPricing, quantity); ok {
		discount = tier.DiscountPercent
	}

	unitPrice := basePrice * (1 - discount/100)
	subtotal := unitPrice * float64(quantity)

	rushFee := 0.0
	if sel.LeadTimeID != "" {
		if lt, ok := findLeadTime(product.LeadTimes, sel.LeadTimeID); ok {
			rushFee = lt.Price.Value()
		}
	}

	addonsTotal := 0.0
	for _, id := range sel.AddonIDs {
		if a, ok := findOption(product.Addons, id); ok {
			addonsTotal += a.Price.Value()
		}
	}

	// Savings is measured against the undiscounted base, not the subtotal.
	savings := 0.0
	if discount > 0 {
		savings = basePrice * float64(quantity) * discount / 100
	}

	return PriceBreakdown{
		BasePrice:       basePrice,
		UnitPrice:       unitPrice,
		Quantity:        quantity,
		Subtotal:        subtotal,
		RushFee:         rushFee,
		AddonsTotal:     addonsTotal,
		Total:           subtotal + rushFee + addonsTotal,
		DiscountPercent: discount,
		Savings:         savings,
	}, true
}

// ApplicableTier returns the first tier in declaration order that matches
// quantity. Overlapping tiers are resolved by order, not by range width.
func ApplicableTier(tiers []Tier, quantity int) (Tier, bool) {
	for _, t := range tiers {
		if t.Matches(quantity) {
			return t, true
		}
	}
	return Tier{}, false
}
