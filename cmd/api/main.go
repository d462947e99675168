package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"kissthecheff/internal/auth"
	"kissthecheff/internal/config"
	"kissthecheff/internal/db"
	"kissthecheff/internal/menu"
	"kissthecheff/internal/nav"
	"kissthecheff/internal/order"
	"kissthecheff/internal/payment"
	"kissthecheff/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// ───────────────────────── CATALOG STORAGE ─────────────────────────
	// In-memory is the default; Postgres only when DATABASE_URL is set.
	var menuRepo menu.Repository = menu.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		pgDB := db.ConnectPostgres(cfg.DatabaseURL)
		defer pgDB.Close()
		menuRepo = menu.NewPostgresRepository(pgDB)
	}

	if cfg.SeedMenu {
		if err := menu.Seed(context.Background(), menuRepo); err != nil {
			log.Fatalf("❌ Seeding menu failed: %v", err)
		}
	}

	// ───────────────────────── SERVICES ─────────────────────────
	staffRepo := auth.NewInMemoryStaffRepository()
	authService := auth.NewService(staffRepo)

	catalog := menu.NewService(menuRepo)
	basket := order.NewBasket()
	orderService := order.NewService(basket, catalog)

	navController := nav.NewController()
	flow := payment.NewFlow(cfg.ConfirmDelay)

	// Deleting a menu item drops it from the basket; leaving the
	// payment screen cancels a pending confirmation.
	catalog.OnItemDeleted(basket.OnItemDeleted)
	navController.OnLeavePayment(flow.CancelPending)

	// ───────────────────────── HANDLERS ─────────────────────────
	r := router.New(router.Handlers{
		Auth:    auth.NewHandler(authService),
		Menu:    menu.NewHandler(catalog),
		Order:   order.NewHandler(orderService),
		Nav:     nav.NewHandler(navController),
		Payment: payment.NewHandler(flow, orderService, navController),
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
