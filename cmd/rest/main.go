package main

import (
	"context"
	"log"

	"fundoo-notes-be/internal/bootstrap"
	"fundoo-notes-be/internal/config"
	"fundoo-notes-be/internal/server"
	"fundoo-notes-be/internal/tracer"
	"fundoo-notes-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Mail Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// Event worker: turns bus events into in-app notifications.
	if container.EventSub != nil {
		if err := container.EventSub.Subscribe("fundoo.>", "notification-worker", container.NotificationService.HandleEvent); err != nil {
			log.Printf("Background Event Worker Error: %v", err)
		}
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
