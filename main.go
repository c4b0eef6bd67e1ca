package main

import (
	"fmt"
	"net/http"

	"github.com/fatali-fataliyev/finance_graphql/api"
	"github.com/fatali-fataliyev/finance_graphql/internal/config"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
	"github.com/fatali-fataliyev/finance_graphql/internal/storage"
	"github.com/fatali-fataliyev/finance_graphql/logging"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		return
	}

	if err := logging.Init(cfg.LogLevel, cfg.IsProduction(), cfg.LogDir); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return
	}

	logging.Logger.Info("application starting...")

	storageInstance, err := newStorage(cfg)
	if err != nil {
		logging.Logger.Errorf("failed to initialize storage: %v", err)
		return
	}

	ft := finance.NewFinanceTracker(storageInstance)
	logging.Logger.Infof("using %s storage", ft.StorageType)

	api, err := api.NewApi(ft)
	if err != nil {
		logging.Logger.Errorf("failed to initialize api: %v", err)
		return
	}

	corsConf := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	handlerWithCors := corsConf.Handler(api.Routes())

	logging.Logger.Infof("starting server on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, handlerWithCors); err != nil {
		logging.Logger.Errorf("failed to start server: %v", err)
		return
	}
}

func newStorage(cfg *config.Config) (finance.Storage, error) {
	if cfg.StorageType == config.StorageInMemory {
		return storage.NewInMemoryStorage(), nil
	}

	db, err := storage.Init(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return storage.NewMySQLStorage(db), nil
}
