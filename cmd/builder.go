package cmd

import (
	"fmt"
	"net/http"

	"songmanager/api"
	"songmanager/api/health"
	songapi "songmanager/api/song"
	songapp "songmanager/application/song"
	"songmanager/config"
	"songmanager/domain/song"
	"songmanager/infrastructure/persistence/memory"
	"songmanager/infrastructure/persistence/relational"
	"songmanager/pkg/logger"
	"songmanager/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder wires config, logger, store, service, controllers and router.
type AppBuilder struct {
	cfg         *config.Config
	repo        song.Repository
	controllers []api.ControllerRegister
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:         cfg,
		controllers: []api.ControllerRegister{},
	}
}

// WithRepository replaces the store selected by database.type.
func (b *AppBuilder) WithRepository(repo song.Repository) *AppBuilder {
	b.repo = repo
	return b
}

// WithController adds a controller next to the song controller.
func (b *AppBuilder) WithController(c api.ControllerRegister) *AppBuilder {
	b.controllers = append(b.controllers, c)
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env),
		zap.String("store", b.cfg.Database.Type))

	var db *gorm.DB
	repo := b.repo
	if repo == nil {
		var err error
		repo, db, err = b.initRepository()
		if err != nil {
			return nil, err
		}
	}

	songService := songapp.NewService(repo)
	controllers := append([]api.ControllerRegister{songapi.NewController(songService)}, b.controllers...)

	var m *metrics.Metrics
	if b.cfg.Server.Metrics {
		m = metrics.New()
	}

	healthController, err := b.newHealthController(db)
	if err != nil {
		return nil, err
	}

	router := api.NewRouter(b.cfg, m, healthController, controllers...)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		db:     db,
	}, nil
}

// initRepository picks the store named by database.type.
func (b *AppBuilder) initRepository() (song.Repository, *gorm.DB, error) {
	if b.cfg.Database.Type == config.DatabaseMemory {
		logger.Info("Using in-memory song store")
		return memory.NewSongRepository(), nil, nil
	}

	logger.Info("Using relational song store", zap.String("driver", b.cfg.Database.Type))

	db, err := NewRelationalConfig(b.cfg).Connect()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", b.cfg.Database.Type, err)
	}

	if b.cfg.Database.AutoMigrate {
		if err := relational.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("failed to create songs table: %w", err)
		}
	}

	return relational.NewSongRepository(db), db, nil
}

func (b *AppBuilder) newHealthController(db *gorm.DB) (*health.Controller, error) {
	if db == nil {
		return health.NewController(b.cfg, nil), nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return health.NewController(b.cfg, sqlDB), nil
}
