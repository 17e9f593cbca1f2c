// Command curpd serves the CURP JSON API over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/curp/internal/api"
	"github.com/dmitrymomot/curp/internal/issuer"
	"github.com/dmitrymomot/curp/internal/messages"
	"github.com/dmitrymomot/curp/internal/metrics"
	"github.com/dmitrymomot/curp/pkg/config"
	"github.com/dmitrymomot/curp/pkg/httpserver"
	"github.com/dmitrymomot/curp/pkg/i18n"
	"github.com/dmitrymomot/curp/pkg/logger"
	"github.com/dmitrymomot/curp/pkg/requestid"
)

// Config is loaded from the environment and an optional .env file.
type Config struct {
	httpserver.Config

	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"curpd"`
	LogLevel    string `env:"LOG_LEVEL"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("HTTP_ADDR is empty")
	}
	if c.DefaultLang != messages.English && c.DefaultLang != messages.Spanish {
		return fmt.Errorf("unsupported DEFAULT_LANG %q", c.DefaultLang)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); c.LogLevel != "" && !ok {
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "curpd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithRedactedKeys(logger.PersonalDataKeys...),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	tr, err := messages.New(
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithMissingKeyLogger(log.With(logger.Component("i18n"))),
	)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	m := metrics.New()
	svc := issuer.New(
		issuer.WithMetrics(m),
		issuer.WithLogger(log),
	)

	router := api.NewRouter(api.Options{
		Issuer:     svc,
		Translator: tr,
		Metrics:    m,
		Logger:     log,
	})

	server := httpserver.NewFromConfig(cfg.Config, httpserver.WithLogger(log))
	log.InfoContext(ctx, "starting",
		slog.String("addr", cfg.Addr),
		logger.Language(tr.DefaultLanguage()),
	)
	return server.Run(ctx, router)
}
