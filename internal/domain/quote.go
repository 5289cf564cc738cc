package domain

// InclusionFlag marks an optional service bundled into a package offer.
// Each active flag contributes a fixed increment to the emissions overhead
// multiplier.
type InclusionFlag string

const (
	InclusionHelicopter      InclusionFlag = "helicopter"
	InclusionYacht           InclusionFlag = "yacht"
	InclusionSafari          InclusionFlag = "safari"
	InclusionGroundTransport InclusionFlag = "ground-transport"
	InclusionAccommodation   InclusionFlag = "accommodation"
)

// EmissionEstimate is a display estimate, recomputed on every input change
// and never persisted by the calculator itself.
type EmissionEstimate struct {
	FlightTons      float64  `json:"flight_tons"`
	PackageTons     float64  `json:"package_tons"`
	TotalTons       float64  `json:"total_tons"`
	OffsetCostCents int64    `json:"offset_cost_cents"`
	Currency        Currency `json:"currency"`
}

// PriceBreakdown is a line-itemized total. All amounts are integer cents;
// rounding to whole currency units happens once, when TotalCents is set.
type PriceBreakdown struct {
	BaseCents     int64    `json:"base_cents"`
	OverageCents  int64    `json:"overage_cents"`
	DiscountCents int64    `json:"discount_cents"`
	TaxCents      int64    `json:"tax_cents"`
	TotalCents    int64    `json:"total_cents"`
	Currency      Currency `json:"currency"`
}
