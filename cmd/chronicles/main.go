package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/capitalchronicles/internal/cli"
	"github.com/dmitrijs2005/capitalchronicles/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
