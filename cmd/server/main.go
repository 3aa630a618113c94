package main

import (
	"context"
	"log"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskdeck/backend/api/handler"
	"github.com/taskdeck/backend/internal/config"
	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
	"github.com/taskdeck/backend/internal/infrastructure/monitor"
	redisInfra "github.com/taskdeck/backend/internal/infrastructure/redis"
	"github.com/taskdeck/backend/internal/infrastructure/weatherapi"
	"github.com/taskdeck/backend/internal/middleware"
	"github.com/taskdeck/backend/internal/router"
	"github.com/taskdeck/backend/internal/services"
	"github.com/taskdeck/backend/internal/services/lifecycle"
	"github.com/taskdeck/backend/pkg/httpcontext"
	"github.com/taskdeck/backend/pkg/logger"
	"github.com/taskdeck/backend/repository"
	boltRepo "github.com/taskdeck/backend/repository/bolt"
	redisRepo "github.com/taskdeck/backend/repository/redis"
	authUC "github.com/taskdeck/backend/usecase/auth"
	taskUC "github.com/taskdeck/backend/usecase/task"
	"github.com/taskdeck/backend/usecase/view"
	weatherUC "github.com/taskdeck/backend/usecase/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := kvstore.Open(cfg.Store.Path, cfg.Store.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open local store", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return store.Close()
	})

	// Weather cache: redis with native TTL when configured, otherwise the
	// local store plus a janitor sweeping stale entries.
	var snapshotCache repository.SnapshotCache
	var redisClient *redislib.Client
	if cfg.Redis.URL != "" {
		client, err := redisInfra.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("redis connection failed", zap.Error(err))
		}
		redisClient = client
		manager.Register("redis", func(ctx context.Context) error {
			return client.Close()
		})
		snapshotCache = redisRepo.NewSnapshotCache(client, cfg.Weather.CacheTTL)
	} else {
		boltCache := boltRepo.NewSnapshotCache(store, cfg.Weather.CacheTTL, nil)
		snapshotCache = boltCache

		janitor := services.NewCacheJanitor(boltCache, cfg.Weather.JanitorInterval, zapLogger)
		janitor.Start()
		manager.Register("cache_janitor", func(ctx context.Context) error {
			janitor.Stop(ctx)
			return nil
		})
	}

	mon := monitor.New(store, redisClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	taskRepo := boltRepo.NewTaskRepository(store)
	credRepo := boltRepo.NewCredentialRepository(store)
	prefRepo := boltRepo.NewPreferenceRepository(store)

	weatherClient := weatherapi.New(weatherapi.Config{
		BaseURL: cfg.Weather.BaseURL,
		APIKey:  cfg.Weather.APIKey,
		Units:   cfg.Weather.Units,
		Timeout: cfg.Context.RequestTimeout,
	}, zapLogger)
	enricher := weatherUC.New(weatherClient, snapshotCache, zapLogger)

	authUseCase := authUC.New(credRepo, prefRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, enricher, zapLogger)
	renderer := view.NewRenderer(nil)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:       apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Task:       apiHandler.NewTaskHandler(taskUseCase, renderer, ctxAdapter, zapLogger),
		Preference: apiHandler.NewPreferenceHandler(prefRepo, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	requireUser := middleware.RequireUser(prefRepo, zapLogger)
	r := router.New(handlers, requireUser)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
