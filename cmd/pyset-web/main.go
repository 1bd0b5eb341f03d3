// Package main serves the pySET web client, optionally proxying /api to a
// pySET server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pyset/internal/config"
	"pyset/internal/logger"
	"pyset/internal/webserver"
)

const gracefulShutdownTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadWeb()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		webHost  = flag.String("web-host", cfg.Host, "Web server host")
		webPort  = flag.Int("web-port", cfg.Port, "Web server port")
		upstream = flag.String("api-upstream", cfg.APIUpstream, "pySET server to proxy /api to (disabled if empty)")
	)
	flag.Parse()
	cfg.Host, cfg.Port, cfg.APIUpstream = *webHost, *webPort, *upstream
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "pyset-web",
		Level:       logger.ParseLevel(cfg.Log.Level),
		Format:      cfg.Log.Format,
	})

	app, err := webserver.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build web server")
	}

	webAddr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	go func() {
		log.Info().Str("addr", "http://"+webAddr).Msg("web server starting")
		if cfg.APIUpstream != "" {
			log.Info().Str("upstream", cfg.APIUpstream).Msg("proxying /api")
		} else {
			log.Info().Msg("API proxy disabled, pages call the pySET server directly")
		}
		if err := app.Listen(webAddr); err != nil {
			log.Error().Err(err).Msg("web server listen error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down web server")
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("web server forced to shutdown")
	}
	log.Info().Msg("web server exited")
}
