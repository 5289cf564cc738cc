// Package emissions estimates CO2 output and offset cost for charter trips
// and travel packages. Results are display estimates: every missing input
// has a documented default and nothing in here ever fails.
package emissions

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nmoreaux/skylux/internal/domain"
)

const (
	// roundTripFactor is always applied; one-way-only trips are not modeled
	// for this estimate.
	roundTripFactor = 2

	baseTonsPerDay         = 0.3
	baseOverheadMultiplier = 0.30

	// offsetRatePerTon is the fixed offset price in whole currency units.
	offsetRatePerTon = 80

	defaultDurationDays = 7
)

// tonsPerKm maps aircraft categories to CO2 output per flown kilometer.
var tonsPerKm = map[domain.AircraftCategory]float64{
	domain.AircraftTurboprop:    0.00062,
	domain.AircraftLightJet:     0.00089,
	domain.AircraftMidsizeJet:   0.00107,
	domain.AircraftHeavyJet:     0.00134,
	domain.AircraftUltraLongJet: 0.00152,
	domain.AircraftRotorcraft:   0.00030,
}

// inclusionIncrement is the additive overhead contribution per bundled
// service. Summation is commutative; order never matters.
var inclusionIncrement = map[domain.InclusionFlag]float64{
	domain.InclusionHelicopter:      0.15,
	domain.InclusionYacht:           0.20,
	domain.InclusionSafari:          0.10,
	domain.InclusionGroundTransport: 0.05,
	domain.InclusionAccommodation:   0.08,
}

var firstNumber = regexp.MustCompile(`\d+`)

// RatePerKm returns the per-kilometer emission rate for a category, 0 for
// variants with no flight component.
func RatePerKm(category domain.AircraftCategory) float64 {
	return tonsPerKm[category]
}

// FlightTons is the round-trip flight emission for a distance and category.
func FlightTons(distanceKm float64, category domain.AircraftCategory) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return distanceKm * tonsPerKm[category] * roundTripFactor
}

// OverheadMultiplier accumulates the base multiplier plus one fixed
// increment per active inclusion.
func OverheadMultiplier(inclusions []domain.InclusionFlag) float64 {
	m := baseOverheadMultiplier
	for _, f := range inclusions {
		m += inclusionIncrement[f]
	}
	return m
}

// PackageTons is the ground/package overhead term.
func PackageTons(durationDays float64, inclusions []domain.InclusionFlag) float64 {
	if durationDays < 0 {
		durationDays = 0
	}
	return durationDays * baseTonsPerDay * OverheadMultiplier(inclusions)
}

// ParseDurationDays extracts a day count from free text like "3 days",
// "2 weeks" or "3-5 days". The first integer wins ("3-5 days" is 3 by
// intent, not by accident); "week" and "month" scale it; anything
// unparseable defaults to 7 days.
func ParseDurationDays(s string) float64 {
	lower := strings.ToLower(s)
	match := firstNumber.FindString(lower)
	if match == "" {
		return defaultDurationDays
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return defaultDurationDays
	}
	switch {
	case strings.Contains(lower, "week"):
		return float64(n * 7)
	case strings.Contains(lower, "month"):
		return float64(n * 30)
	}
	return float64(n)
}

// Estimate computes the full emission breakdown. Internal math runs at full
// float precision; tons are rounded to 2dp and the offset cost to whole
// cents only here, at the surface.
func Estimate(distanceKm float64, category domain.AircraftCategory, durationDays float64, inclusions []domain.InclusionFlag, currency domain.Currency) domain.EmissionEstimate {
	flight := FlightTons(distanceKm, category)
	pkg := PackageTons(durationDays, inclusions)
	total := flight + pkg

	return domain.EmissionEstimate{
		FlightTons:      round2(flight),
		PackageTons:     round2(pkg),
		TotalTons:       round2(total),
		OffsetCostCents: int64(math.Round(total * offsetRatePerTon * 100)),
		Currency:        currency,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
