package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/config"
	httpDelivery "github.com/glowmarket/backend/internal/delivery/http"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
	"github.com/glowmarket/backend/internal/infrastructure/cache"
	"github.com/glowmarket/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "development" {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	log.Infof("Starting GlowMarket Backend v1.0.0")
	log.Infof("Environment: %s", cfg.Server.Environment)
	log.Infof("Record store: %s (project: %s)", cfg.Store.BaseURL, cfg.Store.ProjectID)

	// Infrastructure: one store client for the whole process, injected
	// into every service.
	store := apper.NewClient(cfg.Store.ProjectID, cfg.Store.PublicKey, cfg.Store.BaseURL)
	defer store.Close()

	productCache := cache.NewMemoryCache(cfg.Cache.SweepInterval)
	defer productCache.Close()
	log.Infof("Product cache TTL: %s", cfg.Cache.TTL)

	mapper := apper.NewMapper(apper.PolicyLenient)

	catalogService := usecase.NewCatalogService(store, productCache, mapper, cfg.Cache.TTL)
	categoryService := usecase.NewCategoryService(store, mapper)
	collectionService := usecase.NewCollectionService(store, mapper, catalogService)
	reviewService := usecase.NewReviewService(store, mapper)

	handler := httpDelivery.NewHandler(catalogService, categoryService, collectionService, reviewService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
