// Package recommend narrows and orders candidate offers. Every populated
// criterion narrows the set; absent criteria impose no constraint. This is
// progressive refinement, not a strict-match query.
package recommend

import (
	"sort"
	"strings"
	"time"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/intent"
)

const (
	// DefaultSearchLimit bounds structured search results.
	DefaultSearchLimit = 10
	// DefaultRecommendLimit bounds chat-driven recommendations.
	DefaultRecommendLimit = 8
)

// Criteria is the structured filter configuration. Zero values mean
// unconstrained.
type Criteria struct {
	LocationSubstring     string
	MinPriceCents         int64
	MaxPriceCents         int64
	MinPassengers         int
	AircraftTypeSubstring string
	DepartureOnOrAfter    time.Time
	Activities            []string
	Difficulty            domain.Difficulty
	Category              domain.OfferType
	Limit                 int
}

// FilterAndRank applies every populated criterion, then a stable ascending
// price sort, then the result cap.
func FilterAndRank(candidates []domain.Offer, c Criteria) []domain.Offer {
	out := make([]domain.Offer, 0, len(candidates))
	for _, offer := range candidates {
		if matches(offer, c) {
			out = append(out, offer)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BasePriceCents < out[j].BasePriceCents
	})

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matches(o domain.Offer, c Criteria) bool {
	if c.Category != "" && o.Type != c.Category {
		return false
	}
	if c.LocationSubstring != "" && !containsFold(o.Location, c.LocationSubstring) {
		return false
	}
	if c.MinPriceCents > 0 && o.BasePriceCents < c.MinPriceCents {
		return false
	}
	if c.MaxPriceCents > 0 && o.BasePriceCents > c.MaxPriceCents {
		return false
	}
	if c.MinPassengers > 0 && o.Capacity < c.MinPassengers {
		return false
	}
	if c.AircraftTypeSubstring != "" {
		// category constants are hyphenated, chat intent says "light jet"
		have := strings.ReplaceAll(string(o.AircraftCategory()), "-", " ")
		want := strings.ReplaceAll(c.AircraftTypeSubstring, "-", " ")
		if !containsFold(have, want) {
			return false
		}
	}
	if !c.DepartureOnOrAfter.IsZero() {
		if o.EmptyLeg == nil || o.EmptyLeg.Departure.Before(c.DepartureOnOrAfter) {
			return false
		}
	}
	if c.Difficulty != "" {
		if o.Package == nil || o.Package.Difficulty != c.Difficulty {
			return false
		}
	}
	if len(c.Activities) > 0 {
		if o.Package == nil || !hasAnyActivity(o.Package.Activities, c.Activities) {
			return false
		}
	}
	return true
}

func hasAnyActivity(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if containsFold(h, w) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// CriteriaFromIntent converts advisory chat intent into filter criteria.
// Need flags pick the category in a fixed priority order; specific craft
// beats the generic "jet" guess.
func CriteriaFromIntent(in intent.TripIntent) Criteria {
	c := Criteria{
		MinPassengers:         in.Passengers,
		MaxPriceCents:         in.BudgetCents,
		AircraftTypeSubstring: in.AircraftType,
		Limit:                 DefaultRecommendLimit,
	}
	if in.To != "" {
		c.LocationSubstring = in.To
	}
	switch {
	case in.NeedsEmptyLeg:
		c.Category = domain.OfferEmptyLeg
	case in.NeedsHelicopter:
		c.Category = domain.OfferHelicopter
	case in.NeedsYacht:
		c.Category = domain.OfferYacht
	case in.NeedsAdventure:
		c.Category = domain.OfferAdventurePackage
	case in.NeedsCar:
		c.Category = domain.OfferLuxuryCar
	case in.NeedsJet:
		c.Category = domain.OfferPrivateJet
	}
	return c
}
