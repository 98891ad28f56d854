package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/platterflow/api"
	"github.com/example/platterflow/pkg/config"
	"github.com/example/platterflow/pkg/discovery"
	"github.com/example/platterflow/pkg/repository"
	"github.com/example/platterflow/pkg/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger, err := newLogger(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting restaurant API",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	db, err := repository.InitDB(&cfg.MySQL)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	cache := repository.NewRedisRepository(&cfg.Redis)
	defer cache.Close()

	audit, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx := context.Background()
	if err := cache.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)

	orders := service.NewOrderService(orderRepo, tableRepo, menuRepo, cache, audit, logger)
	tables := service.NewTableService(tableRepo, cache, audit, logger)
	menu := service.NewMenuService(menuRepo, cache, audit, logger)
	auth := service.NewAuthService(userRepo, audit, logger, cfg.Auth.BcryptCost)

	server := api.NewServer(cfg, logger, orders, tables, menu, auth, audit)
	server.SetupRoutes()

	// Advisory registration: the API serves regardless of etcd health
	instance := &discovery.Instance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	registry, err := discovery.NewRegistry(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
		registry = nil
	} else if err := registry.Register(ctx, instance); err != nil {
		logger.Warn("Failed to register instance", zap.Error(err))
	} else {
		logger.Info("Instance registered in etcd",
			zap.String("name", cfg.Server.Name),
			zap.String("address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)))
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			serverErr <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if registry != nil {
		if err := registry.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister instance", zap.Error(err))
		}
		registry.Close()
	}

	closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := audit.Close(closeCtx); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Service stopped")
}

func newLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	return zc.Build()
}
