package offers

import (
	"context"
	"log"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/intent"
	"github.com/nmoreaux/skylux/internal/recommend"
	"github.com/nmoreaux/skylux/internal/repository"
)

type OfferUseCase interface {
	List(ctx context.Context) ([]domain.Offer, error)
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	Search(ctx context.Context, criteria recommend.Criteria) ([]domain.Offer, error)
	Recommend(ctx context.Context, freeText string) ([]domain.Offer, intent.TripIntent)
}

type Cache interface {
	GetOffers(ctx context.Context, offerType domain.OfferType) ([]domain.Offer, error)
	SetOffers(ctx context.Context, offerType domain.OfferType, offers []domain.Offer) error
}

type OfferService struct {
	repo           repository.OfferRepository
	cache          Cache
	searchLimit    int
	recommendLimit int
}

func NewOfferService(repo repository.OfferRepository, cache Cache, searchLimit, recommendLimit int) *OfferService {
	if searchLimit <= 0 {
		searchLimit = recommend.DefaultSearchLimit
	}
	if recommendLimit <= 0 {
		recommendLimit = recommend.DefaultRecommendLimit
	}
	return &OfferService{repo: repo, cache: cache, searchLimit: searchLimit, recommendLimit: recommendLimit}
}

func (s *OfferService) List(ctx context.Context) ([]domain.Offer, error) {
	return s.fetch(ctx, "")
}

func (s *OfferService) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	return s.repo.GetByID(ctx, id)
}

// Search fetches the coarse candidate set (per category when constrained)
// and refines it in memory; the filter itself never talks to the store.
func (s *OfferService) Search(ctx context.Context, criteria recommend.Criteria) ([]domain.Offer, error) {
	candidates, err := s.fetch(ctx, criteria.Category)
	if err != nil {
		return nil, err
	}
	if criteria.Limit <= 0 {
		criteria.Limit = s.searchLimit
	}
	return recommend.FilterAndRank(candidates, criteria), nil
}

// Recommend turns free text into advisory criteria and filters against
// them. A failed fetch yields an empty list, never an error: "no results"
// is a caller-side display decision.
func (s *OfferService) Recommend(ctx context.Context, freeText string) ([]domain.Offer, intent.TripIntent) {
	parsed := intent.Parse(freeText)
	criteria := recommend.CriteriaFromIntent(parsed)
	if criteria.Limit <= 0 || criteria.Limit > s.recommendLimit {
		criteria.Limit = s.recommendLimit
	}

	candidates, err := s.fetch(ctx, criteria.Category)
	if err != nil {
		log.Printf("recommend: fetch failed: %v", err)
		return []domain.Offer{}, parsed
	}
	return recommend.FilterAndRank(candidates, criteria), parsed
}

func (s *OfferService) fetch(ctx context.Context, offerType domain.OfferType) ([]domain.Offer, error) {
	if s.cache != nil {
		// cache.ErrCacheMiss and infrastructure errors both fall through
		if cached, err := s.cache.GetOffers(ctx, offerType); err == nil {
			return cached, nil
		}
	}

	var (
		offers []domain.Offer
		err    error
	)
	if offerType == "" {
		offers, err = s.repo.List(ctx)
	} else {
		offers, err = s.repo.ListByType(ctx, offerType)
	}
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetOffers(ctx, offerType, offers)
	}
	return offers, nil
}

var _ OfferUseCase = (*OfferService)(nil)
