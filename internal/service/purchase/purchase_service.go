package purchase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/kafka"
	"github.com/nmoreaux/skylux/internal/repository"
)

type PurchaseUseCase interface {
	CreatePurchase(ctx context.Context, input CreatePurchaseInput) (*domain.OffsetPurchase, error)
	ConfirmPurchase(ctx context.Context, token string) (*domain.OffsetPurchase, error)
	CancelPurchase(ctx context.Context, token string) (*domain.OffsetPurchase, error)
	ExpirePendingPurchases(ctx context.Context) ([]domain.OffsetPurchase, error)
}

type Cache interface {
	AcquireHold(ctx context.Context, offerID int64, email string, ttl time.Duration) (bool, error)
	ReleaseHold(ctx context.Context, offerID int64, email string) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// publishRetries bounds the kafka publish attempts per event.
const publishRetries = 3

type PurchaseService struct {
	purchases          repository.PurchaseRepository
	cache              Cache
	producer           Producer
	purchaseTopic      string
	notificationsTopic string
	holdTTL            time.Duration
	confirmationTTL    time.Duration
}

type CreatePurchaseInput struct {
	OfferID      int64           `json:"offer_id"`
	EmissionTons float64         `json:"emission_tons"`
	CostCents    int64           `json:"cost_cents"`
	Currency     domain.Currency `json:"currency"`
	Email        string          `json:"email"`
}

type PurchaseServiceOption func(*PurchaseService)

func WithNotificationsTopic(topic string) PurchaseServiceOption {
	return func(s *PurchaseService) {
		s.notificationsTopic = topic
	}
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	cache Cache,
	producer Producer,
	purchaseTopic string,
	holdTTL, confirmationTTL time.Duration,
	opts ...PurchaseServiceOption,
) *PurchaseService {
	service := &PurchaseService{
		purchases:       purchases,
		cache:           cache,
		producer:        producer,
		purchaseTopic:   purchaseTopic,
		holdTTL:         holdTTL,
		confirmationTTL: confirmationTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *PurchaseService) CreatePurchase(ctx context.Context, input CreatePurchaseInput) (*domain.OffsetPurchase, error) {
	if input.Email == "" {
		return nil, errors.New("email is required")
	}
	if input.EmissionTons <= 0 {
		return nil, errors.New("emission tons must be positive")
	}
	if input.CostCents < 0 {
		return nil, errors.New("cost must not be negative")
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireHold(ctx, input.OfferID, input.Email, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("purchase already in progress")
		}
		locked = true
	}

	expiresIn := s.confirmationTTL
	if expiresIn == 0 {
		expiresIn = s.holdTTL
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.CurrencyEUR
	}

	purchase := &domain.OffsetPurchase{
		OfferID:      input.OfferID,
		Token:        uuid.NewString(),
		EmissionTons: input.EmissionTons,
		CostCents:    input.CostCents,
		Currency:     currency,
		Email:        input.Email,
		ExpiresAt:    time.Now().Add(expiresIn),
	}

	if err := s.purchases.CreatePending(ctx, purchase); err != nil {
		if locked {
			_ = s.cache.ReleaseHold(ctx, input.OfferID, input.Email)
		}
		return nil, err
	}

	purchase.Status = domain.PurchaseStatusPending
	if err := s.publish(ctx, "purchase_created", purchase); err != nil {
		log.Printf("WARNING: failed to publish purchase_created event for purchase %s: %v", purchase.Token, err)
	}
	return purchase, nil
}

func (s *PurchaseService) ConfirmPurchase(ctx context.Context, token string) (*domain.OffsetPurchase, error) {
	current, err := s.purchases.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.PurchaseStatusPending {
		return nil, errors.New("purchase is not pending")
	}

	updated, err := s.purchases.UpdateStatus(ctx, token, domain.PurchaseStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "purchase_confirmed", updated); err != nil {
		log.Printf("WARNING: failed to publish purchase_confirmed event for purchase %s: %v", updated.Token, err)
	}
	if s.cache != nil {
		_ = s.cache.ReleaseHold(ctx, updated.OfferID, updated.Email)
	}
	return updated, nil
}

func (s *PurchaseService) CancelPurchase(ctx context.Context, token string) (*domain.OffsetPurchase, error) {
	current, err := s.purchases.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.PurchaseStatusCancelled || current.Status == domain.PurchaseStatusExpired {
		return current, nil
	}

	updated, err := s.purchases.UpdateStatus(ctx, token, domain.PurchaseStatusCancelled)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "purchase_cancelled", updated); err != nil {
		log.Printf("WARNING: failed to publish purchase_cancelled event for purchase %s: %v", updated.Token, err)
	}
	if s.cache != nil {
		_ = s.cache.ReleaseHold(ctx, updated.OfferID, updated.Email)
	}
	return updated, nil
}

func (s *PurchaseService) ExpirePendingPurchases(ctx context.Context) ([]domain.OffsetPurchase, error) {
	deadline := time.Now()
	expired, err := s.purchases.ExpirePendingBefore(ctx, deadline)
	if err != nil {
		return nil, err
	}
	for _, p := range expired {
		_ = s.publish(ctx, "purchase_expired", &p)
		if s.cache != nil {
			_ = s.cache.ReleaseHold(ctx, p.OfferID, p.Email)
		}
	}
	return expired, nil
}

func (s *PurchaseService) publish(ctx context.Context, eventType string, purchase *domain.OffsetPurchase) error {
	if s.producer == nil || s.purchaseTopic == "" {
		return nil
	}
	event := kafka.PurchaseEvent{
		Type:         eventType,
		Token:        purchase.Token,
		OfferID:      purchase.OfferID,
		EmissionTons: purchase.EmissionTons,
		CostCents:    purchase.CostCents,
		Currency:     string(purchase.Currency),
		Email:        purchase.Email,
		Status:       string(purchase.Status),
		ExpiresAt:    purchase.ExpiresAt,
	}
	if err := s.producer.PublishWithRetry(ctx, s.purchaseTopic, purchase.Token, event, publishRetries); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, purchase.Token, event, publishRetries)
	}
	return nil
}

var _ PurchaseUseCase = (*PurchaseService)(nil)
