package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"growline.backend/internal/config"
	mongods "growline.backend/internal/infrastructure/datasources/mongodb"
	"growline.backend/internal/infrastructure/repositories"
	"growline.backend/internal/interfaces/http/handlers"
	"growline.backend/internal/interfaces/http/middleware"
	"growline.backend/internal/usecases"
	"growline.backend/pkg/logger"
	"growline.backend/pkg/redis"
	"growline.backend/pkg/referral"
)

var (
	loadDotenv   = godotenv.Load
	loadCfg      = config.Load
	initLog      = logger.Init
	initRedis    = redis.Init
	connectMongo = mongods.NewConnection
	pingMongo    = mongods.Ping
	runServer    = func(r *gin.Engine, port string) error {
		srv := &http.Server{Addr: ":" + port, Handler: r}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
			log.Println("🛑 Shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")
	defer func() { _ = redis.Close() }()

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Payloads with fields the API does not know are rejected rather
	// than silently accepted.
	binding.EnableDecoderDisallowUnknownFields = true

	// Connect to MongoDB
	client, err := connectMongo(cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	if err := pingMongo(pingCtx, client); err != nil {
		log.Printf("⚠️ MongoDB not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to MongoDB")
	}
	pingCancel()

	usersDB := client.Database(cfg.Mongo.UsersDB)
	adminDB := client.Database(cfg.Mongo.AdminDB)

	// Ensure indexes (best effort; the API works without them)
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongods.EnsureIndexes(idxCtx, usersDB, adminDB); err != nil {
		logger.Warn(context.Background(), "Failed to ensure indexes", zap.Error(err))
	}
	idxCancel()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(usersDB)
	paymentRepo := repositories.NewPaymentRepository(usersDB)
	adminPaymentRepo := repositories.NewAdminPaymentRepository(adminDB)
	withdrawalRepo := repositories.NewWithdrawalRepository(adminDB)

	// Initialize usecases
	userUsecase := usecases.NewUserUsecase(userRepo, referral.NewCode)
	teamUsecase := usecases.NewTeamUsecase(userRepo)
	paymentUsecase := usecases.NewPaymentUsecase(userRepo, paymentRepo, adminPaymentRepo)
	withdrawalUsecase := usecases.NewWithdrawalUsecase(userRepo, withdrawalRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		userHandler:       userHandler,
		teamHandler:       teamHandler,
		paymentHandler:    paymentHandler,
		withdrawalHandler: withdrawalHandler,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 Growline Backend starting on port %s", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
