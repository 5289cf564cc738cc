package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nmoreaux/skylux/config"
	"github.com/nmoreaux/skylux/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

type RedisCache struct {
	client    *redis.Client
	offersTTL time.Duration
	cartTTL   time.Duration
}

func NewRedisCache(cfg config.RedisConfig, offersTTL, cartTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		offersTTL: offersTTL,
		cartTTL:   cartTTL,
	}
}

func (c *RedisCache) GetOffers(ctx context.Context, offerType domain.OfferType) ([]domain.Offer, error) {
	data, err := c.client.Get(ctx, offersKey(offerType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var offers []domain.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *RedisCache) SetOffers(ctx context.Context, offerType domain.OfferType, offers []domain.Offer) error {
	payload, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	// jitter spreads expiry so all type caches don't refill at once
	ttl := c.offersTTL + time.Duration(rand.Intn(30))*time.Second
	return c.client.Set(ctx, offersKey(offerType), payload, ttl).Err()
}

// AcquireHold takes a short exclusive hold while a pending offset purchase
// is created, so double-submits for the same offer and buyer don't race.
func (c *RedisCache) AcquireHold(ctx context.Context, offerID int64, email string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, holdKey(offerID, email), "held", ttl).Result()
}

func (c *RedisCache) ReleaseHold(ctx context.Context, offerID int64, email string) error {
	return c.client.Del(ctx, holdKey(offerID, email)).Err()
}

func (c *RedisCache) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := c.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

func (c *RedisCache) SetCart(ctx context.Context, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return c.client.Set(ctx, cartKey(cart.UserID), payload, c.cartTTL).Err()
}

func (c *RedisCache) DeleteCart(ctx context.Context, userID string) error {
	return c.client.Del(ctx, cartKey(userID)).Err()
}

func offersKey(offerType domain.OfferType) string {
	if offerType == "" {
		return "cache:offers:all"
	}
	return fmt.Sprintf("cache:offers:%s", offerType)
}

func holdKey(offerID int64, email string) string {
	return fmt.Sprintf("hold:offer:%d:%s", offerID, email)
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
