package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/verdantly/garden-care-backend/config"
	"github.com/verdantly/garden-care-backend/internal/bootstrap"
	"github.com/verdantly/garden-care-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	taskDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("task sink: %v", err)
	}
	defer taskDB.Close()

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache, err = bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Printf("redis unavailable, climate cache disabled: %v", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "garden-care-backend",
		Version:     cfg.App.Version,
		DB:          pool,
		TaskDB:      taskDB,
		Redis:       cache,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
