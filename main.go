package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/christiantuyishime01/momoledger/internal/app"
)

func main() {
	_ = godotenv.Load() // optional, local development only

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	application := app.New() // Initialize the application
	err := application.Run(ctx)
	application.Stop(ctx) // Release resources regardless of the run outcome

	if err != nil {
		os.Exit(1)
	}
}
