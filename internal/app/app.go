package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"diet-profile-go/internal/auth"
	"diet-profile-go/internal/config"
	"diet-profile-go/internal/db"
	"diet-profile-go/internal/domain/catalog"
	"diet-profile-go/internal/domain/labresult"
	"diet-profile-go/internal/domain/preferences"
	"diet-profile-go/internal/domain/profile"
	"diet-profile-go/internal/domain/serving"
	userdomain "diet-profile-go/internal/domain/user"
	"diet-profile-go/internal/repository/inmemory"
	catalogrepo "diet-profile-go/internal/repository/postgres/catalog"
	labresultrepo "diet-profile-go/internal/repository/postgres/labresult"
	preferencesrepo "diet-profile-go/internal/repository/postgres/preferences"
	servingrepo "diet-profile-go/internal/repository/postgres/serving"
	userrepo "diet-profile-go/internal/repository/postgres/user"
	redisrepo "diet-profile-go/internal/repository/redis"
	"diet-profile-go/internal/storage"
	"diet-profile-go/internal/transport/httpserver"
	"diet-profile-go/internal/transport/httpserver/handler"
	"diet-profile-go/internal/transport/httpserver/handler/account"
	"diet-profile-go/internal/transport/httpserver/handler/common"
	"diet-profile-go/internal/transport/httpserver/handler/labresults"
	preferenceshandler "diet-profile-go/internal/transport/httpserver/handler/preferences"
	authmw "diet-profile-go/internal/transport/httpserver/middleware"
	"diet-profile-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	closers    []func() error
}

type repositories struct {
	users       userdomain.Repository
	catalog     catalog.Repository
	preferences preferences.Repository
	servings    serving.Repository
	labResults  labresult.Repository
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &App{cfg: cfg}
	if err := a.build(ctx, log); err != nil {
		if closeErr := a.Close(); closeErr != nil {
			log.Error("app: cleanup after failed init", "err", closeErr)
		}
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, log logger.Logger) error {
	cfg := a.cfg

	log.Info("app: initializing storage", "backend", cfg.DB.Backend)
	repos, err := a.newRepositories(ctx, log)
	if err != nil {
		return err
	}

	log.Info("app: initializing catalog cache", "backend", cfg.Cache.Backend)
	cache, err := a.newCatalogCache(ctx, log)
	if err != nil {
		return err
	}

	log.Info("app: initializing blob store", "backend", cfg.Storage.Backend)
	blobs, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	users := userdomain.NewService(repos.users, hasher, tokens)
	catalogs := catalog.NewService(repos.catalog, cache, cfg.Cache.TTL)
	dietary := preferences.NewManager(repos.preferences, preferences.Dietary)
	allergies := preferences.NewManager(repos.preferences, preferences.Allergy)
	servings := serving.NewService(repos.servings, catalogs)
	labs := labresult.NewService(repos.labResults, blobs, cfg.Storage.MaxUploadBytes, log)
	profiles := profile.NewAggregator(users, dietary, allergies, labs)

	handlers := handler.New(
		common.New(log),
		account.New(users, profiles, cfg.PublicBaseURL, log),
		preferenceshandler.New(catalogs, dietary, allergies, servings, cfg.PublicBaseURL, log),
		labresults.New(labs, log),
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, authmw.NewBearerAuth(users, log), log)

	log.Info("app: initializing http server")
	a.httpServer = httpserver.NewServer(cfg.HTTP, router, log)
	return nil
}

func (a *App) newRepositories(ctx context.Context, log logger.Logger) (repositories, error) {
	if a.cfg.DB.Backend == config.DBBackendMemory {
		log.Warn("app: using in-memory storage, data is lost on restart")
		store := inmemory.NewSeededStore()
		return repositories{
			users:       inmemory.NewUserRepository(store),
			catalog:     inmemory.NewCatalogRepository(store),
			preferences: inmemory.NewPreferenceRepository(store),
			servings:    inmemory.NewServingRepository(store),
			labResults:  inmemory.NewLabResultRepository(store),
		}, nil
	}

	dbConn, err := db.NewPostgres(a.cfg.DB, log)
	if err != nil {
		return repositories{}, err
	}
	a.closers = append(a.closers, func() error {
		sqlDB, err := dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	if a.cfg.DB.AutoMigrate {
		log.Info("db: applying migrations")
		if err := db.Migrate(ctx, dbConn); err != nil {
			return repositories{}, err
		}
	}

	return repositories{
		users:       userrepo.NewPostgres(dbConn),
		catalog:     catalogrepo.NewPostgres(dbConn),
		preferences: preferencesrepo.NewPostgres(dbConn),
		servings:    servingrepo.NewPostgres(dbConn),
		labResults:  labresultrepo.NewPostgres(dbConn),
	}, nil
}

func (a *App) newCatalogCache(ctx context.Context, log logger.Logger) (catalog.Cache, error) {
	switch a.cfg.Cache.Backend {
	case config.CacheBackendMemory:
		return inmemory.NewInMemoryCatalogCache(), nil
	case config.CacheBackendRedis:
		client, err := redisrepo.NewClient(ctx, a.cfg.Cache.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return redisrepo.NewCatalogCache(client, a.cfg.Cache.Redis.KeyPrefix, log), nil
	default:
		return nil, nil
	}
}

func newBlobStore(ctx context.Context, cfg config.StorageConfig) (labresult.BlobStore, error) {
	if cfg.Backend == config.StorageBackendS3 {
		return storage.NewS3Store(ctx, cfg.S3)
	}
	return storage.NewLocalStore(cfg.LocalDir)
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// ShutdownTimeout bounds how long in-flight requests get after a stop signal.
func (a *App) ShutdownTimeout() time.Duration {
	return a.cfg.HTTP.ShutdownTimeout
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
