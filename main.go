package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/timemachine-studios/timemachine-proxy/pkg/api/handler"
	"github.com/timemachine-studios/timemachine-proxy/pkg/api/middleware"
	"github.com/timemachine-studios/timemachine-proxy/pkg/cerebras"
	"github.com/timemachine-studios/timemachine-proxy/pkg/groq"
	"github.com/timemachine-studios/timemachine-proxy/pkg/logger"
	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
	"github.com/timemachine-studios/timemachine-proxy/pkg/ratelimit"
	"github.com/timemachine-studios/timemachine-proxy/pkg/workers"
)

type Config struct {
	Port                int    `env:"PORT" envDefault:"8080"`
	GroqAPIKey          string `env:"GROQ_API_KEY"`
	CerebrasAPIKey      string `env:"CEREBRAS_API_KEY"`
	DefaultPersonaLimit int    `env:"DEFAULT_PERSONA_LIMIT" envDefault:"30"`
	GirliePersonaLimit  int    `env:"GIRLIE_PERSONA_LIMIT" envDefault:"25"`
	ProPersonaLimit     int    `env:"PRO_PERSONA_LIMIT" envDefault:"5"`
	MaintenanceMode     bool   `env:"MAINTENANCE_MODE" envDefault:"false"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	// Provider keys are checked at call time, not here: the server must come
	// up even when one upstream is unconfigured.
	groqClient := groq.NewClient(cfg.GroqAPIKey)
	cerebrasClient := cerebras.NewClient(cfg.CerebrasAPIKey)

	limiter := ratelimit.NewStore(map[persona.Persona]int{
		persona.Default: cfg.DefaultPersonaLimit,
		persona.Girlie:  cfg.GirliePersonaLimit,
		persona.Pro:     cfg.ProPersonaLimit,
	}, time.Now)

	chatHandler := handler.NewChat(cerebrasClient, groqClient, limiter)

	var root http.Handler = chatHandler
	root = middleware.RequestID(root)
	root = middleware.Maintenance(cfg.MaintenanceMode, root)

	server, err := workers.NewHTTPServer(fmt.Sprintf(":%d", cfg.Port), root)
	if err != nil {
		return nil, fmt.Errorf("creating http server: %w", err)
	}

	return workers.Group{server}, nil
}
