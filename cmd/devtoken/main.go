package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ridwanfathin/menu-price-insights/internal/config"
	"github.com/ridwanfathin/menu-price-insights/internal/service"
)

// devtoken prints an access token signed with JWT_SECRET for local testing.
func main() {
	userID := flag.String("user", "", "user id (required)")
	email := flag.String("email", "", "user email")
	restaurantID := flag.String("restaurant", "", "restaurant id (defaults to the user id)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set to sign tokens")
	}

	authService := service.NewAuthService(service.AuthServiceConfig{
		JWTSecret:           cfg.JWTSecret,
		JWTAccessExpiration: *ttl,
	})

	token, err := authService.GenerateAccessToken(*userID, *email, *restaurantID)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
