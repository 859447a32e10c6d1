package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/mwale-dev/shopledger/internal/metrics"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
	"github.com/mwale-dev/shopledger/internal/modules/catalog"
	"github.com/mwale-dev/shopledger/internal/modules/inventory"
	"github.com/mwale-dev/shopledger/internal/modules/reporting"
	"github.com/mwale-dev/shopledger/internal/modules/sales"
	"github.com/mwale-dev/shopledger/internal/modules/shop"
	"github.com/mwale-dev/shopledger/internal/modules/user"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using process environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("ping database", "err", err)
		os.Exit(1)
	}
	log.Info("connected to database")

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		jwtSecret = "super-secret"
		log.Warn("JWT_SECRET_KEY not set, using insecure default")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(metrics.Middleware)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if os.Getenv("METRICS_ENABLED") == "true" {
		router.Handle("/metrics", metrics.Handler())
	}

	// ── Repositories ────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	shopRepo := shop.NewPostgresRepository(db)
	catalogRepo := catalog.NewPostgresRepository(db)
	inventoryRepo := inventory.NewPostgresRepository(db)
	receiptRepo := inventory.NewReceiptPostgresRepository(db)
	salesRepo := sales.NewPostgresRepository(db)
	reportingRepo := reporting.NewPostgresRepository(db)

	// ── Services ────────────────────────────────────────────
	userService := user.NewService(userRepo)
	shopService := shop.NewService(shopRepo)
	catalogService := catalog.NewService(catalogRepo)
	inventoryService := inventory.NewService(inventoryRepo, receiptRepo)
	salesService := sales.NewService(salesRepo, catalogRepo)
	reportingService := reporting.NewService(reportingRepo, inventoryRepo, salesRepo)
	authService := auth.NewService(userRepo, jwtSecret)

	// ── Handlers ────────────────────────────────────────────
	authMW := auth.NewMiddleware(userRepo, jwtSecret)
	userHandler := user.NewHandler(userService)
	shopHandler := shop.NewHandler(shopService)
	catalogHandler := catalog.NewHandler(catalogService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	salesHandler := sales.NewHandler(salesService)
	reportingHandler := reporting.NewHandler(reportingService)

	router.Route("/api/v1", func(api chi.Router) {
		auth.NewHandler(authService).RegisterRoutes(api)

		api.Group(func(authed chi.Router) {
			authed.Use(authMW.Authenticate)

			catalogHandler.RegisterRoutes(authed)
			salesHandler.RegisterEmployeeRoutes(authed)
			inventoryHandler.RegisterEmployeeRoutes(authed)
			reportingHandler.RegisterEmployeeRoutes(authed)

			authed.Group(func(owner chi.Router) {
				owner.Use(auth.RequireOwner)

				userHandler.RegisterRoutes(owner)
				shopHandler.RegisterRoutes(owner)
				catalogHandler.RegisterOwnerRoutes(owner)
				inventoryHandler.RegisterOwnerRoutes(owner)
				salesHandler.RegisterOwnerRoutes(owner)
				reportingHandler.RegisterOwnerRoutes(owner)
			})
		})
	})

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("shopledger api listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
