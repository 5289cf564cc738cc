// Package pricing computes line-itemized totals for marketplace offers.
// Two strategies exist, selected by offer variant: the package strategy
// (per-unit overage plus an optional membership discount) and the empty-leg
// strategy (flat tax, no discount). They are separate code paths on
// purpose and must not be merged into one formula.
package pricing

import (
	"math"

	"github.com/nmoreaux/skylux/internal/domain"
)

const (
	// freePackageThresholdCents: a discounted package below this subtotal,
	// with no overage participants, is promoted to free. Strictly below;
	// the boundary value itself still pays.
	freePackageThresholdCents = 150000

	// emptyLegTaxRate is the checkout tax applied to empty-leg bookings.
	emptyLegTaxRate = 0.081
)

// PackageInput describes one package pricing request.
type PackageInput struct {
	BasePriceCents  int64
	BaseCapacity    int
	RequestedUnits  int
	DiscountPercent float64
	DiscountActive  bool
	Currency        domain.Currency
}

// ComposePackage prices a package or charter with per-unit overage and an
// optional percentage discount. Totals are clamped to zero and rounded to
// the nearest whole currency unit at the end; intermediate amounts keep
// cent precision.
func ComposePackage(in PackageInput) domain.PriceBreakdown {
	capacity := in.BaseCapacity
	if capacity < 1 {
		capacity = 1
	}
	requested := in.RequestedUnits
	if requested < 0 {
		requested = 0
	}
	base := in.BasePriceCents
	if base < 0 {
		base = 0
	}
	pct := in.DiscountPercent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	perUnit := float64(base) / float64(capacity)
	overageUnits := requested - capacity
	if overageUnits < 0 {
		overageUnits = 0
	}
	overage := float64(overageUnits) * perUnit
	subtotal := float64(base) + overage

	var discount float64
	if in.DiscountActive {
		discount = subtotal * pct / 100
	}

	breakdown := domain.PriceBreakdown{
		BaseCents:     base,
		OverageCents:  int64(math.Round(overage)),
		DiscountCents: int64(math.Round(discount)),
		Currency:      in.Currency,
	}

	// Promotional rule: small discounted packages with no overage collapse
	// to free. Exactly this condition, nothing broader.
	if in.DiscountActive && subtotal < freePackageThresholdCents && requested <= capacity {
		breakdown.DiscountCents = int64(math.Round(subtotal))
		breakdown.TotalCents = 0
		return breakdown
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	breakdown.TotalCents = roundToWholeUnit(total)
	return breakdown
}

// ComposeEmptyLeg prices an empty-leg checkout: base plus a fixed-rate tax.
// No discount path exists for this variant.
func ComposeEmptyLeg(basePriceCents int64, currency domain.Currency) domain.PriceBreakdown {
	if basePriceCents < 0 {
		basePriceCents = 0
	}
	tax := int64(math.Round(float64(basePriceCents) * emptyLegTaxRate))
	return domain.PriceBreakdown{
		BaseCents:  basePriceCents,
		TaxCents:   tax,
		TotalCents: basePriceCents + tax,
		Currency:   currency,
	}
}

// roundToWholeUnit rounds cents to the nearest whole currency unit.
func roundToWholeUnit(cents float64) int64 {
	return int64(math.Round(cents/100)) * 100
}
