package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nmoreaux/skylux/api"
	"github.com/nmoreaux/skylux/config"
	"github.com/nmoreaux/skylux/internal/cart"
	"github.com/nmoreaux/skylux/internal/observability"
	"github.com/nmoreaux/skylux/internal/service/offers"
	"github.com/nmoreaux/skylux/internal/service/purchase"
	"github.com/nmoreaux/skylux/internal/service/quotes"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Offers    offers.OfferUseCase
	Quotes    quotes.QuoteUseCase
	Purchases purchase.PurchaseUseCase
	Carts     *cart.Service
	Metrics   *observability.Collector
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, deps),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	var quoteCounter, purchaseCounter, recommendCounter func()
	if deps.Metrics != nil {
		quoteCounter = deps.Metrics.QuotesComputed.Inc
		purchaseCounter = deps.Metrics.PurchasesCreated.Inc
		recommendCounter = deps.Metrics.Recommendations.Inc
	}

	v1 := router.Group("/api/v1")
	api.NewOfferHandler(deps.Offers, recommendCounter).Register(v1.Group("/offers"))
	api.NewPurchaseHandler(deps.Purchases, purchaseCounter).Register(v1.Group("/purchases"))
	api.NewCartHandler(deps.Carts, deps.Offers).Register(v1.Group("/cart"))
	api.NewAirportHandler().Register(v1.Group("/airports"))
	api.NewQuoteHandler(deps.Quotes, quoteCounter).Register(v1.Group("/quotes"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
