package main

import (
	"log"

	"github.com/harborpark/transport/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ harborpark failed to start: %v", err)
	}
}
