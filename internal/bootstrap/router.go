package bootstrap

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/survey-manager/survey-backend/config"
	httpapi "github.com/survey-manager/survey-backend/internal/api/http"
	apimiddleware "github.com/survey-manager/survey-backend/internal/api/http/middleware"
	"github.com/survey-manager/survey-backend/internal/auth"
	authhttp "github.com/survey-manager/survey-backend/internal/auth/http"
	authmiddleware "github.com/survey-manager/survey-backend/internal/auth/middleware"
	"github.com/survey-manager/survey-backend/internal/logger"
	surveyhttp "github.com/survey-manager/survey-backend/internal/surveys/http"
	"github.com/survey-manager/survey-backend/internal/surveys/repository"
	"github.com/survey-manager/survey-backend/internal/surveys/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Log         *logger.Logger
	DB          *sql.DB
	Redis       *redis.Client
}

// BuildRouter wires the survey stack: Postgres repositories behind the Redis
// cache decorators, the command and query services, and their HTTP routes.
func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimiddleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type", apimiddleware.RequestIDHeader},
		ExposeHeaders:    []string{apimiddleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, cfg.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	api := r.Group("/api/v1")
	if !cfg.IsProduction() {
		authhttp.New(tokens).Register(api)
	}

	cache := repository.NewRedisCache(dep.Redis, cfg.Cache.TTL)
	writeRepo := repository.NewCachedSurveyRepository(repository.NewPostgresSurveyRepository(dep.DB), cache, dep.Log)
	readRepo := repository.NewPostgresReadRepository(dep.DB)
	cachedReadRepo := repository.NewCachedReadRepository(readRepo, cache, dep.Log)
	events := repository.NewRedisEventBus(dep.Redis)

	handler := surveyhttp.New(
		service.NewCommandService(writeRepo, events, dep.Log),
		service.NewQueryService(cachedReadRepo, readRepo),
		dep.Log,
	)

	limiter := apimiddleware.NewWriteRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	surveys := api.Group("/surveys")
	surveys.Use(authmiddleware.JWTAuthMiddleware(tokens))
	handler.Register(surveys, limiter.Middleware())

	return r
}
