package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nmoreaux/skylux/config"
	"github.com/nmoreaux/skylux/internal/bootstrap"
	"github.com/nmoreaux/skylux/internal/cache"
	"github.com/nmoreaux/skylux/internal/cart"
	"github.com/nmoreaux/skylux/internal/geo"
	"github.com/nmoreaux/skylux/internal/kafka"
	"github.com/nmoreaux/skylux/internal/observability"
	"github.com/nmoreaux/skylux/internal/repository"
	"github.com/nmoreaux/skylux/internal/service/offers"
	"github.com/nmoreaux/skylux/internal/service/purchase"
	"github.com/nmoreaux/skylux/internal/service/quotes"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.Database.MigrationsDir != "" {
		if err := repository.RunMigrations(cfg.Database); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Purchase.OffersCacheTTL)*time.Second,
		time.Duration(cfg.Cart.TTLMinutes)*time.Minute)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	var geocoder geo.Geocoder
	if cfg.Geocoder.BaseURL != "" {
		geocoder = geo.NewHTTPGeocoder(cfg.Geocoder.BaseURL, time.Duration(cfg.Geocoder.TimeoutSeconds)*time.Second)
	}

	metrics, err := observability.NewCollector(nil)
	if err != nil {
		log.Fatalf("register metrics: %v", err)
	}

	offerRepo := repository.NewOfferRepository(pool)
	purchaseRepo := repository.NewPurchaseRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)

	offerService := offers.NewOfferService(offerRepo, redisCache, cfg.Recommend.SearchLimit, cfg.Recommend.RecommendLimit)
	quoteService := quotes.NewQuoteService(offerRepo, memberRepo, geocoder, time.Duration(cfg.Purchase.MemberLookupTimeout)*time.Second)
	purchaseService := purchase.NewPurchaseService(
		purchaseRepo,
		redisCache,
		producer,
		cfg.Kafka.PurchaseTopic,
		time.Duration(cfg.Purchase.HoldTTLMinutes)*time.Minute,
		time.Duration(cfg.Purchase.ConfirmationTTL)*time.Minute,
		purchase.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	cartService := cart.NewService(redisCache)

	if err := bootstrap.Run(ctx, cfg, bootstrap.Deps{
		Offers:    offerService,
		Quotes:    quoteService,
		Purchases: purchaseService,
		Carts:     cartService,
		Metrics:   metrics,
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
