package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"guide-catalog-be/internal/bootstrap"
	"guide-catalog-be/internal/config"
	"guide-catalog-be/internal/server"
	"guide-catalog-be/internal/tracer"
	"guide-catalog-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	isProd := cfg.App.Environment == "production"

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, isProd)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if container.Subscriber != nil {
		log.Println("Background: Subscribing to subscription updates...")
		err := container.Subscriber.Subscribe(ctx, cfg.Catalog.SubscriptionSubject, cfg.Catalog.SubscriptionDurable, container.SubscriptionEvents.Handle)
		if err != nil {
			log.Printf("Background Subscriber Error: %v", err)
		}
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
