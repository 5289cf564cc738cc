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
	"github.com/nmoreaux/skylux/internal/cache"
	"github.com/nmoreaux/skylux/internal/email"
	"github.com/nmoreaux/skylux/internal/kafka"
	"github.com/nmoreaux/skylux/internal/repository"
	"github.com/nmoreaux/skylux/internal/service/purchase"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Purchase.OffersCacheTTL)*time.Second,
		time.Duration(cfg.Cart.TTLMinutes)*time.Minute)

	purchaseRepo := repository.NewPurchaseRepository(pool)
	purchaseService := purchase.NewPurchaseService(
		purchaseRepo,
		redisCache,
		producer,
		cfg.Kafka.PurchaseTopic,
		time.Duration(cfg.Purchase.HoldTTLMinutes)*time.Minute,
		time.Duration(cfg.Purchase.ConfirmationTTL)*time.Minute,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, emailSender.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	expireTicker := time.NewTicker(time.Duration(cfg.Worker.ExpirationSweepMinutes) * time.Minute)
	defer expireTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-expireTicker.C:
			expired, err := purchaseService.ExpirePendingPurchases(ctx)
			if err != nil {
				log.Printf("expire purchases error: %v", err)
				continue
			}
			if len(expired) > 0 {
				log.Printf("expired %d pending offset purchases", len(expired))
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
