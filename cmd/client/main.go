package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/pass-the-pages/internal/client"
	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
)

func main() {
	log := logger.NewClientLogger("pass-the-pages-client", os.Stderr)
	if level := os.Getenv("PTP_LOG_LEVEL"); level != "" {
		logger.SetLevel(level)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(
		*cfg,
		client.NewFileTokenStore(cfg.TokenFile),
		client.NewTerminalPasswordReader(os.Stdin, os.Stderr),
		os.Stdout,
		log,
	)

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
