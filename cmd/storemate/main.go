package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/storemate/storemate-cli/internal/cli"
	"github.com/storemate/storemate-cli/pkg/config"
	"github.com/storemate/storemate-cli/pkg/logger"
)

func main() {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "storemate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}

	if err := app.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
