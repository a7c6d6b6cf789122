package main

import (
	"context"
	"log"

	"github.com/hirepipe/hirepipe/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
