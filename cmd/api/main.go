package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"pet-boutique/internal/config"
	"pet-boutique/internal/database"
	"pet-boutique/internal/handlers"
	"pet-boutique/internal/routes"
	"pet-boutique/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Printf("error disconnecting mongo: %v", err)
		}
	}()

	documents := store.NewMongoStore(client.Database(cfg.MongoDB))

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), handlers.RequestID())
	routes.RegisterRoutes(router, documents)

	log.Println("server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
