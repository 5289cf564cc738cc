// Package cart keeps per-user session carts in redis. Carts live only
// until their TTL; nothing here touches Postgres.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nmoreaux/skylux/internal/cache"
	"github.com/nmoreaux/skylux/internal/domain"
)

var ErrItemNotFound = errors.New("cart item not found")

type Store interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	SetCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the user's cart, empty when none exists yet.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	c, err := s.store.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	return c, nil
}

// AddItem appends an offer to the cart. Quantity is clamped to at least 1.
// Adding the same offer again bumps the existing line's quantity.
func (s *Service) AddItem(ctx context.Context, userID string, offer *domain.Offer, quantity int, customizations map[string]string) (*domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].OfferID == offer.ID {
			c.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, domain.CartItem{
			ID:             uuid.NewString(),
			OfferID:        offer.ID,
			OfferType:      offer.Type,
			Title:          offer.Title,
			PriceCents:     offer.BasePriceCents,
			Currency:       offer.Currency,
			Quantity:       quantity,
			Customizations: customizations,
			AddedAt:        now,
		})
	}
	c.UpdatedAt = now

	if err := s.store.SetCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.UpdatedAt = time.Now()

	if len(c.Items) == 0 {
		if err := s.store.DeleteCart(ctx, userID); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err := s.store.SetCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.store.DeleteCart(ctx, userID)
}

// TotalCents sums the cart lines per currency.
func TotalCents(c *domain.Cart) map[domain.Currency]int64 {
	totals := make(map[domain.Currency]int64)
	for _, item := range c.Items {
		totals[item.Currency] += item.PriceCents * int64(item.Quantity)
	}
	return totals
}
