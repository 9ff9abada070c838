package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/verdantly/garden-care-backend/internal/api/http"
	"github.com/verdantly/garden-care-backend/internal/api/http/middleware"
	"github.com/verdantly/garden-care-backend/internal/care/climate"
	carehttp "github.com/verdantly/garden-care-backend/internal/care/http"
	"github.com/verdantly/garden-care-backend/internal/care/repository"
	"github.com/verdantly/garden-care-backend/internal/care/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	TaskDB      *sql.DB
	Redis       *redis.Client // optional
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	var cache *climate.Cache
	if dep.Redis != nil {
		cache = climate.NewCache(dep.Redis)
	}

	plantRepo := repository.NewPlantRepo(dep.DB)
	gardenRepo := repository.NewGardenRepo(dep.DB)
	climateRepo := repository.NewClimateRepo(dep.DB)
	taskRepo := repository.NewTaskRepo(dep.TaskDB)

	resolver := climate.NewResolver(climateRepo, cache)
	scheduler := service.NewSchedulerService(plantRepo, gardenRepo, resolver, taskRepo)

	api := r.Group("/api/v1")

	care := api.Group("/care")
	care.Use(middleware.APIKeyMiddleware())
	care.Use(middleware.RequestIDMiddleware())
	care.Use(middleware.RateLimitMiddleware())

	carehttp.Register(care, scheduler, resolver)

	return r
}
