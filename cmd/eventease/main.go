package main

import (
	"log"

	"github.com/dev-9820/eventease-frontend/internal/app"
	"github.com/dev-9820/eventease-frontend/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
