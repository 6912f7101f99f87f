package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nestimate/nestimate/internal/auth"
	"github.com/nestimate/nestimate/internal/config"
	"github.com/nestimate/nestimate/internal/db"
	"github.com/nestimate/nestimate/internal/handlers"
	"github.com/nestimate/nestimate/internal/middleware"
	"github.com/nestimate/nestimate/internal/predictor"
	"github.com/nestimate/nestimate/internal/property"
	"github.com/nestimate/nestimate/internal/repo"
	"github.com/nestimate/nestimate/internal/session"
)

func main() {

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	setupLogger(cfg.LogFormat)

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	database.SetMaxOpenConns(cfg.DBMaxOpenConns)
	database.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := db.Migrate(cfg.DatabaseURL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	// Load the trained artifact pair. Missing files prevent startup.
	artifact, err := predictor.Load(cfg.ModelPath, cfg.ModelColumnsPath)
	if err != nil {
		log.Fatalf("Failed to load model artifact: %v", err)
	}
	slog.Info("model artifact loaded", "path", cfg.ModelPath, "columns", len(artifact.Columns))

	sess := session.NewManager([]byte(cfg.SessionSecret))

	userRepo := repo.NewUserRepo(database)
	propRepo := repo.NewPropertyRepo(database)

	authHandler := &handlers.AuthHandler{
		Auth:    auth.NewService(userRepo, cfg.LoginFailDelay),
		Session: sess,
	}
	propHandler := &handlers.PropertyHandler{
		Props:   property.NewService(propRepo),
		Session: sess,
	}
	predictHandler := &handlers.PredictHandler{Artifact: artifact, Session: sess}
	pageHandler := &handlers.PageHandler{Session: sess, Props: propRepo}
	adminHandler := &handlers.AdminHandler{Props: propRepo, Session: sess}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(false))
	r.Use(middleware.Prometheus)

	// Health and metrics (no auth, no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public pages
	r.Get("/", pageHandler.Index)
	r.Get("/prediction", predictHandler.Form)
	r.Post("/prediction", predictHandler.Predict)
	r.Get("/confirmation", pageHandler.Confirmation)
	r.Get("/logout", authHandler.Logout)

	// Auth pages behind the per-IP limiter
	authLimiter := middleware.AuthRateLimiter()
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Get("/login", authHandler.LoginForm)
		r.Post("/login", authHandler.Login)
		r.Get("/register", authHandler.RegisterForm)
		r.Post("/register", authHandler.Register)
	})

	// Pages that need a session
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(sess))
		r.Get("/home", pageHandler.Home)
		r.Get("/form", propHandler.Form)
		r.Post("/form", propHandler.Submit)
		r.Get("/admin", adminHandler.Panel)
	})

	r.NotFound(pageHandler.NotFound)

	// Start server LAST
	slog.Info("starting server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
}
