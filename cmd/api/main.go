package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tovenkitchen/storefront/internal/addons"
	"github.com/tovenkitchen/storefront/internal/banners"
	"github.com/tovenkitchen/storefront/internal/cart"
	"github.com/tovenkitchen/storefront/internal/catalog"
	"github.com/tovenkitchen/storefront/internal/config"
	"github.com/tovenkitchen/storefront/internal/httpx"
	kafkax "github.com/tovenkitchen/storefront/internal/kafka"
	"github.com/tovenkitchen/storefront/internal/ordering"
	"github.com/tovenkitchen/storefront/internal/postgres"
	"github.com/tovenkitchen/storefront/internal/redisx"
	"github.com/tovenkitchen/storefront/internal/runtimecfg"
	"github.com/tovenkitchen/storefront/internal/subscriptions"
	"github.com/tovenkitchen/storefront/internal/toast"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, ordering.TopicAddonOrderPlaced, 1024)
	prod.Start(ctx)

	// Repos & stores
	catalogRepo := &catalog.Repo{DB: db}
	bannerRepo := &banners.Repo{DB: db}
	cartStore := &cart.Store{RDB: rdb}
	toastStore := &toast.Store{RDB: rdb}
	subsLoader := subscriptions.NewLoader(&subscriptions.Repo{DB: db})
	siteCfg := &runtimecfg.Provider{DB: db}

	svc := &addons.Service{
		Catalog:     catalogRepo,
		Cart:        cartStore,
		Subs:        subsLoader,
		Config:      siteCfg,
		Toasts:      toastStore,
		Producer:    prod,
		ServiceName: cfg.ServiceName,
	}
	svc.StartWindowTicker(ctx, time.Minute)

	// Router & handler
	router := httpx.NewRouter()
	sh := &httpx.StorefrontHandler{
		Catalog: catalogRepo,
		Banners: bannerRepo,
		Addons:  svc,
		Cart:    cartStore,
		Toasts:  toastStore,
		Locale:  cfg.Locale,
	}
	sh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox -> flush & close writer
	cancel()          // stop producer loop and window ticker
	prod.WaitClosed() // drain
}
