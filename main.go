package main

import (
	"context"
	"log"

	api "ferrylog-backend/cmd/api"
	authRepo "ferrylog-backend/internal/auth/repository"
	authUsecase "ferrylog-backend/internal/auth/usecase"
	fleetRepo "ferrylog-backend/internal/fleet/repository"
	"ferrylog-backend/internal/notification"
	"ferrylog-backend/internal/store"
	voyageUsecase "ferrylog-backend/internal/voyage/usecase"
	"ferrylog-backend/pkg/config"
	"ferrylog-backend/pkg/database"
	"ferrylog-backend/pkg/telegram"
	"ferrylog-backend/pkg/ws"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Persistence gateway + collection store
	gateway, err := store.NewGormGateway(db)
	if err != nil {
		log.Fatal("Failed to initialize persistence gateway:", err)
	}
	st := store.New(gateway)

	// The dashboard must never present an empty, falsely-confident view:
	// a failed initial load is fatal to the session.
	if err := st.Load(context.Background()); err != nil {
		log.Fatal("Failed to load collections:", err)
	}
	if cfg.SeedDemoData {
		if err := st.SeedDemoData(context.Background()); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(st)
	shipRepo := fleetRepo.NewShipRepository(st)

	// Live fleet event hub
	hub := ws.NewHub()
	go hub.Run()

	// Telegram notification dispatch
	telegramClient := telegram.NewClient(cfg.TelegramAPIBase)
	notifService := notification.NewService(st, telegramClient)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	voyageUsecaseInstance := voyageUsecase.NewVoyageUsecase(st, userRepo, notifService, hub)

	// Initialize HTTP handler
	handler := api.NewHandler(st, userRepo, shipRepo, authUsecaseInstance, voyageUsecaseInstance, notifService, cfg, hub)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
