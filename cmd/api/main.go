// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/gamevault-backend/internal/infrastructure/database/redis"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
	"github.com/your-org/gamevault-backend/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Build the store backend
	store, redisClient, cleanup, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store backend: %v", err)
	}
	defer cleanup()

	// Seed the catalog: populate an empty store with the bundled defaults, or
	// backfill missing timestamps on pre-existing records. Runs on every start.
	repo := catalog.NewRepository(store)
	if err := repo.Seed(context.Background(), catalog.DefaultGames()); err != nil {
		log.Fatalf("Catalog seeding failed: %v", err)
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, store, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// buildStore creates the configured store backend. The returned redis client
// is nil unless the redis backend is selected; cleanup closes whatever
// connection was opened.
func buildStore(cfg *config.Config) (storage.Store, *goredis.Client, func(), error) {
	switch cfg.Storage.Backend {
	case config.StoreBackendRedis:
		client, err := redis.NewConnection(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := client.Health(); err != nil {
			client.Close()
			return nil, nil, nil, err
		}
		return storage.NewRedisStore(client.GetClient()), client.GetClient(), func() { client.Close() }, nil

	case config.StoreBackendPostgres:
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Health(); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		store, err := storage.NewPostgresStore(db.GetDB())
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return store, nil, func() { db.Close() }, nil

	case config.StoreBackendDisabled:
		return storage.NewDisabledStore(), nil, func() {}, nil

	default:
		return storage.NewMemoryStore(), nil, func() {}, nil
	}
}
