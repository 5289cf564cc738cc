package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmoreaux/skylux/internal/domain"
)

func TestFlightTons_RoundTripMultiplier(t *testing.T) {
	for _, d := range []float64{100, 648, 5000} {
		got := FlightTons(d, domain.AircraftMidsizeJet)
		assert.InDelta(t, 2*d*0.00107, got, 1e-9)
	}
}

func TestFlightTons_NoFlightComponentForUnknownCategory(t *testing.T) {
	assert.Zero(t, FlightTons(1000, ""))
}

func TestFlightTons_NegativeDistanceClamped(t *testing.T) {
	assert.Zero(t, FlightTons(-50, domain.AircraftMidsizeJet))
}

func TestOverheadMultiplier_Base(t *testing.T) {
	assert.InDelta(t, 0.30, OverheadMultiplier(nil), 1e-9)
}

func TestOverheadMultiplier_AccumulatesPerInclusion(t *testing.T) {
	flags := []domain.InclusionFlag{
		domain.InclusionHelicopter,
		domain.InclusionYacht,
		domain.InclusionSafari,
		domain.InclusionGroundTransport,
		domain.InclusionAccommodation,
	}
	assert.InDelta(t, 0.30+0.15+0.20+0.10+0.05+0.08, OverheadMultiplier(flags), 1e-9)
}

func TestOverheadMultiplier_OrderIndependent(t *testing.T) {
	a := []domain.InclusionFlag{domain.InclusionYacht, domain.InclusionSafari}
	b := []domain.InclusionFlag{domain.InclusionSafari, domain.InclusionYacht}
	assert.Equal(t, OverheadMultiplier(a), OverheadMultiplier(b))
}

func TestOverheadMultiplier_Monotonic(t *testing.T) {
	// adding any flag never decreases the multiplier
	flags := []domain.InclusionFlag{}
	prev := OverheadMultiplier(flags)
	for _, f := range []domain.InclusionFlag{
		domain.InclusionGroundTransport,
		domain.InclusionAccommodation,
		domain.InclusionSafari,
		domain.InclusionHelicopter,
		domain.InclusionYacht,
	} {
		flags = append(flags, f)
		cur := OverheadMultiplier(flags)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestParseDurationDays(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"7 days", 7},
		{"2 weeks", 14},
		{"1 month", 30},
		{"", 7},
		{"a long time", 7},
		{"3-5 days", 3},
		{"10 Days", 10},
		{"approx. 2 Weeks in total", 14},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseDurationDays(c.in), "input %q", c.in)
	}
}

func TestEstimate_EndToEndScenario(t *testing.T) {
	// ZRH -> LHR on a midsize jet, 3 days, no inclusions
	const distance = 787.6

	est := Estimate(distance, domain.AircraftMidsizeJet, 3, nil, domain.CurrencyEUR)

	wantFlight := 2 * distance * 0.00107
	wantPackage := 3 * 0.3 * 0.30
	wantTotal := wantFlight + wantPackage

	assert.InDelta(t, wantFlight, est.FlightTons, 0.01)
	assert.InDelta(t, wantPackage, est.PackageTons, 0.005)
	assert.InDelta(t, wantTotal, est.TotalTons, 0.01)
	assert.InDelta(t, float64(est.OffsetCostCents), wantTotal*80*100, 100)
	assert.Equal(t, domain.CurrencyEUR, est.Currency)
}

func TestEstimate_PackageOnlyOffer(t *testing.T) {
	// adventure packages have no flight component, only overhead
	est := Estimate(5000, "", 7, []domain.InclusionFlag{domain.InclusionSafari, domain.InclusionAccommodation}, domain.CurrencyUSD)

	assert.Zero(t, est.FlightTons)
	assert.InDelta(t, 7*0.3*(0.30+0.10+0.08), est.PackageTons, 0.005)
	assert.Equal(t, est.PackageTons, est.TotalTons)
}

func TestEstimate_RoundsOnlyAtTheSurface(t *testing.T) {
	// 2 x 333.333 x 0.00089 = 0.59333..., surfaced as 0.59; the unrounded
	// value still feeds the total and the offset cost
	est := Estimate(333.333, domain.AircraftLightJet, 1.5, nil, domain.CurrencyEUR)

	assert.Equal(t, 0.59, est.FlightTons)
	assert.Equal(t, 0.14, est.PackageTons)
	assert.Equal(t, 0.73, est.TotalTons)
	assert.Equal(t, int64(5827), est.OffsetCostCents)
}
