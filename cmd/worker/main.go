package main

import (
	"context"
	"log"

	"github.com/verdantly/garden-care-backend/config"
	"github.com/verdantly/garden-care-backend/internal/bootstrap"
	"github.com/verdantly/garden-care-backend/internal/care/climate"
	cronjob "github.com/verdantly/garden-care-backend/internal/care/cron"
	"github.com/verdantly/garden-care-backend/internal/care/repository"
	"github.com/verdantly/garden-care-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Redis.Addr == "" {
		log.Fatal("REDIS_ADDR is required for the cache-warm worker")
	}

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	client, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer client.Close()

	sched := cronjob.NewScheduler(repository.NewClimateRepo(pool), climate.NewCache(client))

	// warm once at startup, then nightly
	sched.WarmClimateCache(ctx)
	sched.Start()

	select {}
}
