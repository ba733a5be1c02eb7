package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/biblio/internal/config"
	"github.com/forgo/biblio/internal/database"
	"github.com/forgo/biblio/internal/handler"
	"github.com/forgo/biblio/internal/middleware"
	"github.com/forgo/biblio/internal/repository"
	"github.com/forgo/biblio/internal/service"
	"github.com/forgo/biblio/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Define the unique indexes the repositories depend on
	if err := database.ApplySchema(ctx, db); err != nil {
		slog.Error("failed to apply database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	bookRepo := repository.NewBookRepository(db)
	loanRepo := repository.NewLoanRepository(db)

	// Initialize services
	authService := service.NewAuthService(memberRepo, jwtService)
	catalogService := service.NewCatalogService(bookRepo)
	lendingService := service.NewLendingService(loanRepo, bookRepo, memberRepo)

	// Bootstrap the admin account when configured
	if cfg.Admin.Username != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			slog.Error("failed to bootstrap admin account", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	lendingHandler := handler.NewLendingHandler(lendingService)

	// Initialize middleware
	authMiddleware := middleware.Auth(authService)
	staffMiddleware := middleware.RequireStaff()

	// Setup routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Auth endpoints (protected)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Catalog endpoints
	mux.Handle("GET /v1/books", authMiddleware(http.HandlerFunc(catalogHandler.List)))
	mux.Handle("GET /v1/books/{bookId}", authMiddleware(http.HandlerFunc(catalogHandler.Get)))
	mux.Handle("POST /v1/books", authMiddleware(staffMiddleware(http.HandlerFunc(catalogHandler.Create))))

	// Lending endpoints
	mux.Handle("POST /v1/loans", authMiddleware(staffMiddleware(http.HandlerFunc(lendingHandler.Borrow))))
	mux.Handle("POST /v1/loans/{loanId}/return", authMiddleware(staffMiddleware(http.HandlerFunc(lendingHandler.Return))))
	mux.Handle("GET /v1/members/{memberId}/loans", authMiddleware(http.HandlerFunc(lendingHandler.MemberHistory)))

	// Reporting endpoints - requires librarian or admin role
	mux.Handle("GET /v1/reports/borrow-summary", authMiddleware(staffMiddleware(http.HandlerFunc(lendingHandler.BorrowSummary))))
	mux.Handle("GET /v1/reports/overdue", authMiddleware(staffMiddleware(http.HandlerFunc(lendingHandler.Overdue))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
