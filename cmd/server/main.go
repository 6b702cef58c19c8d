package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aeron/internal/cache"
	"aeron/internal/config"
	"aeron/internal/llm"
	"aeron/internal/repository"
	"aeron/internal/service"
	"aeron/internal/transport/rest"
	"aeron/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	ctx := context.Background()
	cfg := config.Load()

	// LLM provider registry
	aiConfig := config.DefaultAIConfig()
	registry := llm.NewRegistry(aiConfig)
	if available := registry.Available(); len(available) > 0 {
		log.Printf("LLM providers: %v (current: %s)", available, registry.CurrentInfo().Provider)
	} else {
		log.Println("LLM providers: none configured (AI generation disabled)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	disruptionRepo := repository.NewDisruptionRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	recoveryRepo := repository.NewRecoveryRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	// Initialize caches
	recoveryCache := cache.NewRecoveryCache(rdb, time.Duration(cfg.RecoveryCacheTTL)*time.Second)

	// Initialize services
	generatorSvc := service.NewGeneratorService()
	aiSvc := service.NewAIService(registry)
	recoverySvc := service.NewRecoveryService(disruptionRepo, categoryRepo, recoveryRepo, recoveryCache, generatorSvc, aiSvc)
	disruptionSvc := service.NewDisruptionService(disruptionRepo, categoryRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	recoverySvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		DisruptionService: disruptionSvc,
		RecoveryService:   recoverySvc,
		SettingsService:   settingsSvc,
		AIService:         aiSvc,
		WSHub:             wsHub,
		Ping: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /api/flights/{identifier}")
		log.Println("  POST/GET /api/flights/{identifier}/recovery-options")
		log.Println("  GET/POST /api/disruptions")
		log.Println("  GET  /api/llm/provider")
		log.Println("  POST /api/llm/provider/switch")
		log.Println("  GET/POST /api/settings")
		log.Println("  WS  /api/ws/ops")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
