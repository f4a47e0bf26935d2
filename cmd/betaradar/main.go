package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"betaradar/internal/cache"
	"betaradar/internal/config"
	"betaradar/internal/fetch"
	"betaradar/internal/logger"
	"betaradar/internal/pipeline"
	"betaradar/internal/scheduler"
	"betaradar/internal/scrape"
	"betaradar/internal/server"
	"betaradar/internal/store"
	"betaradar/internal/translate"
)

func main() {
	// .env is optional, env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger.Init(cfg.Debug)

	repo, err := store.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}

	sources, err := fetch.LoadSources(cfg.SourcesConfigPath)
	if err != nil {
		log.Fatalf("Sources config error: %v", err)
	}

	translator := translate.NewClient(cfg.FetchTimeout, cache.New(), cfg.TranslateCacheTTL)

	p := pipeline.New(pipeline.Options{
		Repo:          repo,
		Fetchers:      fetch.Build(sources, cfg.MaxFeedItems, cfg.FetchTimeout),
		Translator:    translator,
		Scraper:       scrape.NewClient(cfg.FetchTimeout),
		TargetLang:    cfg.TargetLang,
		BackfillLimit: cfg.BackfillLimit,
	})

	// First refresh before serving, so /api/news has data immediately
	log.Println("Running initial refresh...")
	if _, err := p.Run(context.Background()); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}

	sched := scheduler.New(p)
	if err := sched.Start(cfg.RefreshInterval); err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}
	defer sched.Stop()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	h := server.NewHandler(p, translator, cfg.TargetLang)
	h.SetScheduler(sched)
	h.RegisterRoutes(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
