package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/geo"
	"github.com/nmoreaux/skylux/internal/repository"
)

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListByType(ctx context.Context, offerType domain.OfferType) ([]domain.Offer, error) {
	args := m.Called(ctx, offerType)
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) GetMembership(ctx context.Context, userID string) (*repository.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Membership), args.Error(1)
}

var (
	zurich   = domain.GeoPoint{Lat: 47.4647, Lon: 8.5492}
	heathrow = domain.GeoPoint{Lat: 51.4700, Lon: -0.4543}
)

func midsizeCharter() *domain.Offer {
	return &domain.Offer{
		ID:             1,
		Type:           domain.OfferPrivateJet,
		Title:          "Citation XLS",
		BasePriceCents: 850000,
		Currency:       domain.CurrencyEUR,
		Capacity:       8,
		DurationText:   "3 days",
		Location:       "Zurich",
		Jet:            &domain.JetDetails{Category: domain.AircraftMidsizeJet},
	}
}

func TestQuoteOffer_EndToEndScenario(t *testing.T) {
	mockOffers := &MockOfferRepository{}
	mockMembers := &MockMemberRepository{}

	service := NewQuoteService(mockOffers, mockMembers, nil, 5*time.Second)

	ctx := context.Background()
	offer := midsizeCharter()

	mockOffers.On("GetByID", ctx, int64(1)).Return(offer, nil).Once()
	mockMembers.On("GetMembership", mock.Anything, "user-1").Return(&repository.Membership{UserID: "user-1"}, nil).Once()

	quote, err := service.QuoteOffer(ctx, QuoteInput{
		OfferID:      1,
		From:         "ZRH",
		To:           "LHR",
		Participants: 4,
		UserID:       "user-1",
	})

	assert.NoError(t, err)

	wantDistance := geo.HaversineKm(zurich, heathrow)
	assert.InDelta(t, wantDistance, quote.DistanceKm, 1)

	// flight = 2 x d x 0.00107; package = 3 x 0.3 x 0.30 = 0.27; offset = total x 80
	wantFlight := 2 * wantDistance * 0.00107
	assert.InDelta(t, wantFlight, quote.Emissions.FlightTons, 0.01)
	assert.InDelta(t, 0.27, quote.Emissions.PackageTons, 0.005)
	assert.InDelta(t, wantFlight+0.27, quote.Emissions.TotalTons, 0.01)
	assert.InDelta(t, float64(quote.Emissions.OffsetCostCents), (wantFlight+0.27)*80*100, 150)

	// 4 of 8 seats, no discount: plain base price
	assert.Equal(t, int64(850000), quote.Price.TotalCents)
}

func TestQuoteOffer_UnknownOffer(t *testing.T) {
	mockOffers := &MockOfferRepository{}

	service := NewQuoteService(mockOffers, nil, nil, time.Second)

	ctx := context.Background()
	mockOffers.On("GetByID", ctx, int64(99)).Return(nil, errors.New("no rows")).Once()

	_, err := service.QuoteOffer(ctx, QuoteInput{OfferID: 99})

	assert.Error(t, err)
}

func TestQuoteOffer_MissingGeoFallsBackToContinents(t *testing.T) {
	mockOffers := &MockOfferRepository{}

	service := NewQuoteService(mockOffers, nil, nil, time.Second)

	ctx := context.Background()
	mockOffers.On("GetByID", ctx, int64(1)).Return(midsizeCharter(), nil).Once()

	quote, err := service.QuoteOffer(ctx, QuoteInput{
		OfferID:       1,
		FromContinent: domain.ContinentEurope,
		ToContinent:   domain.ContinentAsia,
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(6000), quote.DistanceKm)
}

func TestQuoteOffer_NoGeoAtAllUsesDefault(t *testing.T) {
	mockOffers := &MockOfferRepository{}

	service := NewQuoteService(mockOffers, nil, nil, time.Second)

	ctx := context.Background()
	mockOffers.On("GetByID", ctx, int64(1)).Return(midsizeCharter(), nil).Once()

	quote, err := service.QuoteOffer(ctx, QuoteInput{OfferID: 1})

	assert.NoError(t, err)
	assert.Equal(t, float64(geo.DefaultDistanceKm), quote.DistanceKm)
}

func TestQuoteOffer_MembershipDiscountApplied(t *testing.T) {
	mockOffers := &MockOfferRepository{}
	mockMembers := &MockMemberRepository{}

	service := NewQuoteService(mockOffers, mockMembers, nil, 5*time.Second)

	ctx := context.Background()
	mockOffers.On("GetByID", ctx, int64(1)).Return(midsizeCharter(), nil).Once()
	mockMembers.On("GetMembership", mock.Anything, "holder").
		Return(&repository.Membership{UserID: "holder", DiscountActive: true, DiscountPercent: 10}, nil).Once()

	quote, err := service.QuoteOffer(ctx, QuoteInput{OfferID: 1, Participants: 4, UserID: "holder"})

	assert.NoError(t, err)
	assert.Equal(t, int64(85000), quote.Price.DiscountCents)
	assert.Equal(t, int64(765000), quote.Price.TotalCents)
}

func TestQuoteOffer_MembershipLookupFailureMeansNoDiscount(t *testing.T) {
	mockOffers := &MockOfferRepository{}
	mockMembers := &MockMemberRepository{}

	service := NewQuoteService(mockOffers, mockMembers, nil, time.Second)

	ctx := context.Background()
	mockOffers.On("GetByID", ctx, int64(1)).Return(midsizeCharter(), nil).Once()
	mockMembers.On("GetMembership", mock.Anything, "holder").Return(nil, errors.New("identity store down")).Once()

	quote, err := service.QuoteOffer(ctx, QuoteInput{OfferID: 1, Participants: 4, UserID: "holder"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), quote.Price.DiscountCents)
	assert.Equal(t, int64(850000), quote.Price.TotalCents)
}

func TestQuoteOffer_EmptyLegUsesTaxStrategy(t *testing.T) {
	mockOffers := &MockOfferRepository{}
	mockMembers := &MockMemberRepository{}

	service := NewQuoteService(mockOffers, mockMembers, nil, time.Second)

	emptyLeg := &domain.Offer{
		ID:             5,
		Type:           domain.OfferEmptyLeg,
		Title:          "ZRH-LHR empty leg",
		BasePriceCents: 320000,
		Currency:       domain.CurrencyEUR,
		Capacity:       8,
		EmptyLeg: &domain.EmptyLegDetails{
			FromAirport: "ZRH", ToAirport: "LHR",
			FromCoord: zurich, ToCoord: heathrow,
			DiscountPercent: 60,
			Category:        domain.AircraftMidsizeJet,
		},
	}

	ctx := context.Background()
	mockOffers.On("GetByID", ctx, int64(5)).Return(emptyLeg, nil).Once()

	quote, err := service.QuoteOffer(ctx, QuoteInput{OfferID: 5, UserID: "holder"})

	assert.NoError(t, err)
	// tax path, never the discount path
	assert.Equal(t, int64(25920), quote.Price.TaxCents)
	assert.Equal(t, int64(345920), quote.Price.TotalCents)
	assert.Equal(t, int64(0), quote.Price.DiscountCents)
	// route coordinates come from the offer itself
	assert.InDelta(t, geo.HaversineKm(zurich, heathrow), quote.DistanceKm, 1)
	mockMembers.AssertNotCalled(t, "GetMembership")
}

func TestQuoteOffer_CancelledContextReturnsNoQuote(t *testing.T) {
	mockOffers := &MockOfferRepository{}

	service := NewQuoteService(mockOffers, nil, nil, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	mockOffers.On("GetByID", ctx, int64(1)).Return(midsizeCharter(), nil).Once()

	cancel()
	_, err := service.QuoteOffer(ctx, QuoteInput{OfferID: 1})

	assert.ErrorIs(t, err, context.Canceled)
}
