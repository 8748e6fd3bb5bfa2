package main

import (
	"flag"

	"netforge/internal/config"
	"netforge/internal/log"
)

func main() {
	configPath := flag.String("config", "netforge.json", "path to the JSON configuration file")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewLogger(log.ParseLevel(*logLevel))
	cfg := config.Load(*configPath)

	runCLI(cfg, logger)
}
