package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/lakshitasisodia/Ni3S/config"
	"github.com/lakshitasisodia/Ni3S/handlers"
	"github.com/lakshitasisodia/Ni3S/middleware"
	"github.com/lakshitasisodia/Ni3S/pipeline"
	"github.com/lakshitasisodia/Ni3S/store"
)

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := config.GetEnvWithDefault("PORT", "8080")
	config.InitCache()

	// The postgres backend is optional; the default reads the snapshot
	// files under DATA_DIR.
	if os.Getenv("DATA_BACKEND") == "postgres" {
		log.Println("Initializing PostgreSQL warehouse backend...")
		if err := config.InitDBWithRetry(5); err != nil {
			log.Fatalf("Failed to initialize PostgreSQL: %v", err)
		}
		defer config.CloseDB()
	}

	loadInitialSnapshot()

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:         86400,
	})

	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressionMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

// loadInitialSnapshot publishes data before the server accepts traffic.
// A warm SQLite cache (SNAPSHOT_CACHE) short-circuits the batch pipeline;
// otherwise the full refresh runs, and its failure is fatal only on a
// cold start since there is nothing to serve.
func loadInitialSnapshot() {
	if path := os.Getenv("SNAPSHOT_CACHE"); path != "" {
		snap, err := store.Load(path)
		if err == nil {
			pipeline.Publish(pipeline.Assemble(snap))
			log.Printf("Published snapshot from cache %s (%d master rows, loaded %s)",
				path, len(snap.Master), snap.LoadedAt.Format(time.RFC3339))
			// Rebuild from source in the background so the cache never
			// outlives a data update for long.
			go func() {
				if sys, err := pipeline.Refresh(handlers.RefreshConfig()); err == nil {
					config.ClearAllCaches()
					if err := store.Save(path, sys.Snapshot); err != nil {
						log.Printf("Error writing snapshot cache: %v", err)
					}
				}
			}()
			return
		}
		log.Printf("Snapshot cache unusable, running full pipeline: %v", err)
	}

	sys, err := pipeline.Refresh(handlers.RefreshConfig())
	if err != nil {
		log.Fatalf("Initial data load failed: %v", err)
	}
	if path := os.Getenv("SNAPSHOT_CACHE"); path != "" {
		if err := store.Save(path, sys.Snapshot); err != nil {
			log.Printf("Error writing snapshot cache: %v", err)
		}
	}
}

func allowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:8080",
		"http://127.0.0.1:3000",
	}
}

func registerRoutes(api *mux.Router) {
	// National routes
	api.HandleFunc("/national/overview", handlers.GetNationalOverview).Methods("GET", "OPTIONS")
	api.HandleFunc("/national/trends", handlers.GetNationalTrends).Methods("GET", "OPTIONS")

	// State routes
	api.HandleFunc("/states", handlers.GetStates).Methods("GET", "OPTIONS")
	api.HandleFunc("/states/{state}/districts", handlers.GetStateDistricts).Methods("GET", "OPTIONS")
	api.HandleFunc("/states/{state}/overview", handlers.GetStateOverview).Methods("GET", "OPTIONS")

	// District routes
	api.HandleFunc("/districts/{state}/{district}", handlers.GetDistrictProfile).Methods("GET", "OPTIONS")

	// Risk routes
	api.HandleFunc("/risk/rankings", handlers.GetRiskRankings).Methods("GET", "OPTIONS")
	api.HandleFunc("/risk/heatmap", handlers.GetRiskHeatmap).Methods("GET", "OPTIONS")
	api.HandleFunc("/risk/distribution", handlers.GetRiskDistribution).Methods("GET", "OPTIONS")

	// Insight routes
	api.HandleFunc("/insights/policy", handlers.GetPolicyInsights).Methods("GET", "OPTIONS")
	api.HandleFunc("/insights/state/{state}", handlers.GetStateInsights).Methods("GET", "OPTIONS")

	// Administration
	api.HandleFunc("/refresh", handlers.PostRefresh).Methods("POST", "OPTIONS")
	api.HandleFunc("/health", handlers.GetHealth).Methods("GET", "OPTIONS")
	api.HandleFunc("/health/detailed", handlers.GetDetailedHealth).Methods("GET", "OPTIONS")
}
