package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/cheezenes/pos-api/internal/app/api"
)

func main() {
	// A missing .env file is fine; deployed processes get real env vars.
	_ = godotenv.Load()
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("pos api exited: %v", err)
	}
}
