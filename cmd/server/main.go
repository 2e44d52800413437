package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/travel-booking-api/internal/config"
	"github.com/gdg-garage/travel-booking-api/internal/database"
	"github.com/gdg-garage/travel-booking-api/internal/handlers"
	"github.com/gdg-garage/travel-booking-api/internal/logger"
	"github.com/gdg-garage/travel-booking-api/internal/notifier"
	"github.com/gdg-garage/travel-booking-api/internal/remote"
	"github.com/gdg-garage/travel-booking-api/internal/service"
	"github.com/gdg-garage/travel-booking-api/internal/store"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to Database
	db := database.Connect(cfg, zlog)
	st := store.New(db)

	// Remote booking systems
	httpClient := remote.NewHTTPClient(context.Background(), cfg)
	flights := remote.NewFlightClient(cfg.FlightAPIURL, httpClient)
	taxis := remote.NewTaxiClient(cfg.TaxiAPIURL, httpClient)

	var ops notifier.Notifier = notifier.Nop{}
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			zlog.Warn("Discord notifier not initialized", zap.Error(err))
		} else {
			ops = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID, zlog)
		}
	}

	// Initialize Services
	customers := service.NewCustomerService(st, zlog)
	hotels := service.NewHotelService(st, zlog)
	bookings := service.NewBookingService(st, zlog)
	guests := service.NewGuestBookingService(st, customers, bookings, zlog)
	travel := service.NewTravelAgentService(st, bookings, flights, taxis, cfg.Agency(), ops, zlog)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, zlog,
		handlers.NewCustomerHandler(customers, zlog),
		handlers.NewHotelHandler(hotels, zlog),
		handlers.NewBookingHandler(bookings, guests, zlog),
		handlers.NewTravelAgentHandler(travel, zlog),
	)

	// Start Server
	zlog.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("flight_api", cfg.FlightAPIURL),
		zap.String("taxi_api", cfg.TaxiAPIURL))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
