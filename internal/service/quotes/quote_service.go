package quotes

import (
	"context"
	"log"
	"time"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/emissions"
	"github.com/nmoreaux/skylux/internal/geo"
	"github.com/nmoreaux/skylux/internal/pricing"
	"github.com/nmoreaux/skylux/internal/repository"
)

type QuoteUseCase interface {
	QuoteOffer(ctx context.Context, input QuoteInput) (*Quote, error)
}

// QuoteInput describes one quote request. Everything besides OfferID is
// optional; missing pieces degrade to documented defaults instead of
// failing.
type QuoteInput struct {
	OfferID       int64
	From          string
	To            string
	FromContinent domain.Continent
	ToContinent   domain.Continent
	DurationText  string
	Participants  int
	UserID        string
}

// Quote bundles the computed display fields attached to an offer.
type Quote struct {
	Offer      domain.Offer            `json:"offer"`
	DistanceKm float64                 `json:"distance_km"`
	Emissions  domain.EmissionEstimate `json:"emissions"`
	Price      domain.PriceBreakdown   `json:"price"`
}

type QuoteService struct {
	offers        repository.OfferRepository
	members       repository.MemberRepository
	geocoder      geo.Geocoder
	memberTimeout time.Duration
}

func NewQuoteService(offers repository.OfferRepository, members repository.MemberRepository, geocoder geo.Geocoder, memberTimeout time.Duration) *QuoteService {
	if memberTimeout <= 0 {
		memberTimeout = 5 * time.Second
	}
	return &QuoteService{offers: offers, members: members, geocoder: geocoder, memberTimeout: memberTimeout}
}

// QuoteOffer composes distance, emissions, and pricing for an offer. Only
// the offer lookup itself can fail; every downstream computation is total.
func (s *QuoteService) QuoteOffer(ctx context.Context, input QuoteInput) (*Quote, error) {
	offer, err := s.offers.GetByID(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}

	distance := s.resolveDistance(ctx, offer, input)

	durationText := input.DurationText
	if durationText == "" {
		durationText = offer.DurationText
	}
	days := emissions.ParseDurationDays(durationText)

	var inclusions []domain.InclusionFlag
	if offer.Package != nil {
		inclusions = offer.Package.Inclusions
	}

	estimate := emissions.Estimate(distance, offer.AircraftCategory(), days, inclusions, offer.Currency)
	price := s.price(ctx, offer, input)

	// a caller that moved on already doesn't get a stale quote
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Quote{
		Offer:      *offer,
		DistanceKm: distance,
		Emissions:  estimate,
		Price:      price,
	}, nil
}

func (s *QuoteService) resolveDistance(ctx context.Context, offer *domain.Offer, input QuoteInput) float64 {
	origin := geo.Endpoint{Continent: input.FromContinent}
	destination := geo.Endpoint{Continent: input.ToContinent}

	if offer.EmptyLeg != nil {
		origin.Point = offer.EmptyLeg.FromCoord
		destination.Point = offer.EmptyLeg.ToCoord
		if origin.Continent == "" {
			origin.Continent = offer.EmptyLeg.FromContinent
		}
		if destination.Continent == "" {
			destination.Continent = offer.EmptyLeg.ToContinent
		}
	}
	if !origin.Point.Valid() && input.From != "" {
		origin.Point = geo.Resolve(ctx, s.geocoder, input.From)
	}
	if !destination.Point.Valid() && input.To != "" {
		destination.Point = geo.Resolve(ctx, s.geocoder, input.To)
	}

	return geo.EstimateKm(origin, destination)
}

// price selects the strategy by variant: empty legs get the flat checkout
// tax, everything else the package composition with the membership
// discount. The two paths never combine.
func (s *QuoteService) price(ctx context.Context, offer *domain.Offer, input QuoteInput) domain.PriceBreakdown {
	if offer.Type == domain.OfferEmptyLeg {
		return pricing.ComposeEmptyLeg(offer.BasePriceCents, offer.Currency)
	}

	membership := s.lookupMembership(ctx, input.UserID)
	return pricing.ComposePackage(pricing.PackageInput{
		BasePriceCents:  offer.BasePriceCents,
		BaseCapacity:    offer.Capacity,
		RequestedUnits:  input.Participants,
		DiscountPercent: membership.DiscountPercent,
		DiscountActive:  membership.DiscountActive,
		Currency:        offer.Currency,
	})
}

// lookupMembership is bounded by a fixed timeout; a slow or failing
// identity store means no discount, not a failed quote.
func (s *QuoteService) lookupMembership(ctx context.Context, userID string) repository.Membership {
	if userID == "" || s.members == nil {
		return repository.Membership{}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.memberTimeout)
	defer cancel()

	m, err := s.members.GetMembership(lookupCtx, userID)
	if err != nil {
		log.Printf("membership lookup for %s failed: %v", userID, err)
		return repository.Membership{UserID: userID}
	}
	return *m
}

var _ QuoteUseCase = (*QuoteService)(nil)
