package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/handlers"
	"finboard/internal/middleware"
	"finboard/internal/repositories"
	"finboard/internal/services"
	"finboard/internal/truelayer"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// .env is optional; real deployments configure through the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Repositories
	connectionRepo := repositories.NewBankConnectionRepository(db)
	goalRepo := repositories.NewSavingsGoalRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.Auth)
	trueLayerClient := truelayer.NewClient(cfg.TrueLayer)
	tokenResolver := services.NewTokenResolver(tokenService, connectionRepo, trueLayerClient, metrics, logger)
	bankDataService := services.NewBankDataService(trueLayerClient, metrics, logger)
	connectionService := services.NewConnectionService(trueLayerClient, connectionRepo, metrics, logger)
	goalService := services.NewSavingsGoalService(goalRepo)

	// Handlers
	secureCookies := cfg.IsProduction()
	bankDataHandler := handlers.NewBankDataHandler(tokenResolver, bankDataService, secureCookies)
	connectionHandler := handlers.NewConnectionHandler(connectionService, secureCookies)
	goalHandler := handlers.NewSavingsGoalHandler(goalService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))
	e.Use(middleware.RateLimiter())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Bank data endpoints resolve their token from cookies (with a bearer
	// fallback inside the resolver), so they are not behind RequireAuth.
	api := e.Group("/api")
	api.GET("/accounts", bankDataHandler.Accounts)
	api.GET("/balance", bankDataHandler.Balances)
	api.GET("/transactions", bankDataHandler.Transactions)
	api.GET("/recurring_payments", bankDataHandler.RecurringPayments)

	authenticated := api.Group("", middleware.RequireAuth(tokenService))
	authenticated.GET("/auth-url", connectionHandler.AuthURL)
	authenticated.POST("/exchange-token", connectionHandler.ExchangeToken)
	authenticated.GET("/check-connection-status", connectionHandler.CheckConnectionStatus)
	authenticated.DELETE("/disconnect", connectionHandler.Disconnect)

	authenticated.POST("/savings-goals", goalHandler.CreateGoal)
	authenticated.GET("/savings-goals", goalHandler.ListGoals)
	authenticated.GET("/savings-goals/:id", goalHandler.GetGoal)
	authenticated.PUT("/savings-goals/:id", goalHandler.UpdateGoal)
	authenticated.DELETE("/savings-goals/:id", goalHandler.DeleteGoal)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
	return nil
}
