package main

import (
	"context"
	"log"

	"threadboard/internal/server"
	"threadboard/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		// Startup failures (missing signing secret, unreachable database)
		// must be visible to the orchestrator as a non-zero exit.
		log.Fatal(err)
	}

	app.Run(ctx)

}
