package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/tavernkeep/guild-api/internal/handlers/api/v1alpha1"
	inventoryorch "github.com/tavernkeep/guild-api/internal/orchestrators/inventory"
	profileorch "github.com/tavernkeep/guild-api/internal/orchestrators/profile"
	rewardorch "github.com/tavernkeep/guild-api/internal/orchestrators/reward"
	"github.com/tavernkeep/guild-api/internal/pkg/clock"
	"github.com/tavernkeep/guild-api/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
	"github.com/tavernkeep/guild-api/internal/repositories/catalog"
	"github.com/tavernkeep/guild-api/internal/repositories/confirmation"
	"github.com/tavernkeep/guild-api/internal/repositories/cooldown"
	"github.com/tavernkeep/guild-api/internal/repositories/ownership"
	profilerepo "github.com/tavernkeep/guild-api/internal/repositories/profile"
)

// serverConfig is loaded from the environment; flags override it.
type serverConfig struct {
	Port          int    `env:"GUILD_API_PORT" envDefault:"8080"`
	RedisAddress  string `env:"GUILD_API_REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisPoolSize int    `env:"GUILD_API_REDIS_POOL_SIZE" envDefault:"10"`
}

var (
	flagPort         int
	flagRedisAddress string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the guild API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&flagPort, "port", 0, "HTTP server port (overrides GUILD_API_PORT)")
	serverCmd.Flags().StringVar(&flagRedisAddress, "redis-address", "", "Redis address (overrides GUILD_API_REDIS_ADDRESS)")
}

func loadConfig(cmd *cobra.Command) (*serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("redis-address") {
		cfg.RedisAddress = flagRedisAddress
	}
	return &cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.RedisAddress, &redisclient.Options{
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}()

	realClock := clock.New()

	profileRepo, err := profilerepo.NewRedis(&profilerepo.RedisConfig{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create profile repository: %w", err)
	}

	ownershipRepo, err := ownership.NewRedis(&ownership.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewUUID("own"),
	})
	if err != nil {
		return fmt.Errorf("failed to create ownership repository: %w", err)
	}

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: client,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog repository: %w", err)
	}

	cooldownRepo, err := cooldown.NewRedis(&cooldown.RedisConfig{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create cooldown repository: %w", err)
	}

	confirmationRepo, err := confirmation.NewRedis(&confirmation.RedisConfig{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create confirmation repository: %w", err)
	}

	if err := seedCatalog(ctx, catalogRepo); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	profileService, err := profileorch.NewOrchestrator(&profileorch.Config{
		ProfileRepo:      profileRepo,
		OwnershipRepo:    ownershipRepo,
		CatalogRepo:      catalogRepo,
		CooldownRepo:     cooldownRepo,
		ConfirmationRepo: confirmationRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create profile orchestrator: %w", err)
	}

	rewardService, err := rewardorch.NewOrchestrator(&rewardorch.Config{
		ProfileRepo:  profileRepo,
		CooldownRepo: cooldownRepo,
		Clock:        realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create reward orchestrator: %w", err)
	}

	inventoryService, err := inventoryorch.NewOrchestrator(&inventoryorch.Config{
		OwnershipRepo: ownershipRepo,
		CatalogRepo:   catalogRepo,
		CooldownRepo:  cooldownRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory orchestrator: %w", err)
	}

	handler, err := apiv1alpha1.NewHandler(&apiv1alpha1.Config{
		ProfileService:   profileService,
		RewardService:    rewardService,
		InventoryService: inventoryService,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	if countOutput, err := profileRepo.Count(ctx); err != nil {
		slog.Warn("failed to count profiles", "error", err.Error())
	} else {
		slog.Info("serving profiles", "count", countOutput.Count)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err.Error())
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
