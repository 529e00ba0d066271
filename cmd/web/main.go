package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/georgemunganga/bikemarket/internal/config"
	"github.com/georgemunganga/bikemarket/internal/modules/catalog"
	"github.com/georgemunganga/bikemarket/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "[bikemarket] ", log.LstdFlags)

	// ── Listing source ──────────────────────────────────────
	repo, closeRepo, err := openRepository(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeRepo()

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatalf("parse templates: %v", err)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	router.Handle("/static/*", web.StaticHandler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok %s\n", repo.Source())
	})

	catalogService := catalog.NewService(repo)
	catalog.NewHandler(catalogService, renderer, logger).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	logger.Printf("BikeMarket storefront starting on %s (listings from %s)", srv.Addr, repo.Source())
	logger.Fatal(srv.ListenAndServe())
}

// openRepository returns the Postgres listing source when DATABASE_URL is set
// and the in-memory fixtures otherwise.
func openRepository(cfg *config.Config, logger *log.Logger) (catalog.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		return catalog.NewMemoryRepository(catalog.Fixtures()), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Println("Successfully connected to the database!")

	if cfg.SeedDatabase {
		if err := catalog.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := catalog.Seed(ctx, db, catalog.Fixtures()); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	return catalog.NewPostgresRepository(db), func() { db.Close() }, nil
}
