package main

import (
	"context"
	"log"

	"emogo-be/internal/bootstrap"
	"emogo-be/internal/config"
	"emogo-be/internal/server"
	"emogo-be/internal/tracer"
	"emogo-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	db, err := database.NewMongoDatabase(context.Background(), cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Printf("MongoDB disconnect error: %v", err)
		}
	}()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(db, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
