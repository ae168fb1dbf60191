package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel_api/internal/config"
	"travel_api/internal/controllers"
	"travel_api/internal/logger"
	"travel_api/internal/metrics"
	"travel_api/internal/middleware"
	"travel_api/internal/routes"
	"travel_api/internal/store"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the document store
	db, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to store: %v", err)
	}

	m := metrics.New("travel_api")
	policy := cfg.UpdateCreatesIfMissing

	r := routes.SetupRouter(routes.Deps{
		Airlines:  controllers.NewAirlineController(db, m, policy.Airlines),
		Airports:  controllers.NewAirportController(db, m, policy.Airports),
		Routes:    controllers.NewRouteController(db, m, policy.Routes),
		Hotels:    controllers.NewHotelController(db, m, policy.Hotels),
		Users:     controllers.NewUserController(db, m, policy.Users),
		Posts:     controllers.NewPostController(db, m, policy.Posts),
		Documents: controllers.NewDocumentController(db, m, policy.Documents),
		Health:    controllers.NewHealthController(db),
		Metrics:   m,
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	server := &http.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		log.Printf("🚀 Server running at %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.Printf("store disconnect error: %v", err)
	}
}
