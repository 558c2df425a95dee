package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/junaidrashid-git/shopping-api/auth"
	"github.com/junaidrashid-git/shopping-api/routes"
	"github.com/junaidrashid-git/shopping-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	// Init store (postgres, mongo or memory, per STORE_DRIVER)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	s, err := store.OpenFromEnv(ctx)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			log.Printf("❌ Failed to close store: %v", err)
		}
	}()

	issuer := auth.NewTokenIssuer(secret)
	verifier := auth.BcryptVerifier{}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s, issuer, verifier)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
