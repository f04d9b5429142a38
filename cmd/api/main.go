package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"
	"golang.org/x/crypto/bcrypt"

	"github.com/niaone/backend/internal/auth"
	"github.com/niaone/backend/internal/catalog"
	"github.com/niaone/backend/internal/dashboard"
	"github.com/niaone/backend/internal/ledger"
	"github.com/niaone/backend/internal/orders"
	"github.com/niaone/backend/internal/rewards"
	"github.com/niaone/backend/internal/router"
	"github.com/niaone/backend/internal/services"
	"github.com/niaone/backend/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// All state is process-local: seed the store from fixtures on boot.
	st := store.New()
	if err := store.Seed(st, bcrypt.DefaultCost); err != nil {
		slog.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}
	slog.Info("Store seeded", "accounts", st.CountAccounts())

	schemaDir := os.Getenv("SCHEMA_DIR")
	if schemaDir == "" {
		schemaDir = "schemas"
	}
	validator, err := services.NewValidator(ctx, schemaDir)
	if err != nil {
		slog.Error("Failed to load request schemas", "dir", schemaDir, "error", err)
		os.Exit(1)
	}

	authSvc := auth.NewService(st)
	ledgerSvc := ledger.NewService(st)
	catalogSvc := catalog.NewService(st)
	ordersSvc := orders.NewService(st)
	rewardsSvc := rewards.NewService(st)

	apiRouter := router.New(router.Handlers{
		Auth:      auth.NewHandler(authSvc, logger),
		Ledger:    ledger.NewHandler(ledgerSvc, validator, logger),
		Catalog:   catalog.NewHandler(catalogSvc, logger),
		Orders:    orders.NewHandler(ordersSvc, validator, logger),
		Rewards:   rewards.NewHandler(rewardsSvc, validator, logger),
		Dashboard: dashboard.NewHandler(st, logger),
	}, authSvc, st)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Fallback for local development
	}
	serverAddr := "0.0.0.0:" + port

	slog.Info("Starting HTTP server", "addr", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		slog.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}
}
