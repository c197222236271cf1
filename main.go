// Command taskall-go is the backend API for a personal productivity
// application: per-user todos and book entries behind JWT authentication,
// plus an aggregated dashboard view. This entry point loads configuration,
// connects to the database, runs migrations, wires services and handlers
// into the router, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/taskall-go/apperror"
	"github.com/user/taskall-go/auth"
	"github.com/user/taskall-go/books"
	"github.com/user/taskall-go/config"
	"github.com/user/taskall-go/dashboard"
	"github.com/user/taskall-go/db"
	"github.com/user/taskall-go/todos"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	// A missing JWT secret or database credential is fatal here: the process
	// refuses to start rather than serve degraded traffic.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Manual dependency injection: stores into services, services into
	// handlers.
	authService := auth.NewService(auth.NewPostgresCredentialStore(pool), *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	todoService := todos.NewService(todos.NewPostgresStore(pool))
	todoHandlers := todos.NewHandlers(todoService)

	bookService := books.NewService(books.NewPostgresStore(pool))
	bookHandlers := books.NewHandlers(bookService)

	dashboardService := dashboard.NewService(todoService, bookService)
	dashboardHandlers := dashboard.NewHandlers(dashboardService)

	r := chi.NewRouter()

	// Global middleware must be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that reuses the apperror envelope.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Public routes
	r.Post("/signup", authHandlers.HandleSignup())
	r.Post("/login", authHandlers.HandleLogin())

	// Protected routes: every handler below runs only after the auth
	// middleware has resolved the caller's identity.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(authService))

		r.Post("/todo", todoHandlers.HandleCreate())
		r.Get("/todos", todoHandlers.HandleList())
		r.Put("/todos/{id}", todoHandlers.HandleUpdate())
		r.Delete("/todos/{id}", todoHandlers.HandleDelete())

		r.Post("/books", bookHandlers.HandleCreate())
		r.Get("/books", bookHandlers.HandleList())
		r.Put("/books/{id}", bookHandlers.HandleUpdate())
		r.Delete("/books/{id}", bookHandlers.HandleDelete())

		r.Get("/dashboard", dashboardHandlers.HandleGetSummary())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate to avoid an import cycle with the handler packages.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
