// Package main is the entry point for the sol API server
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/james-see/sol/pkg/api"
	"github.com/james-see/sol/pkg/config"
)

func main() {
	port := flag.Int("port", 8080, "Server port")
	configPath := flag.String("config", "", "TOML config file with systems and modes")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}

	logger.Info("starting sol API server", "port", *port)
	logger.Info("swagger docs available", "url", fmt.Sprintf("http://localhost:%d/swagger/index.html", *port))

	if err := api.StartServer(*port, cfg); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
