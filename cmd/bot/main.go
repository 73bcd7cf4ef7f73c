package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/liavyona/covid-stats-bot/pkg/bot"
	"github.com/liavyona/covid-stats-bot/pkg/chart"
	"github.com/liavyona/covid-stats-bot/pkg/command"
	"github.com/liavyona/covid-stats-bot/pkg/config"
	"github.com/liavyona/covid-stats-bot/pkg/gateway"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
	"github.com/liavyona/covid-stats-bot/pkg/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if err := cfg.Check(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN must be provided")
	}

	reg := metrics.NewRegistry()
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Err(err).Str("addr", cfg.MetricsAddr).Msg("Metrics listener stopped")
			}
		}()
	}

	gw := gateway.New(gateway.Options{BaseURL: cfg.StatsAPIURL, Logger: &log.Logger, Metrics: reg})
	svc := command.New(command.Options{
		Repository: stats.NewRepository(gw),
		Renderer:   chart.NewRenderer(cfg.RenderConcurrency, reg),
		Timeout:    cfg.CommandTimeout,
		Logger:     &log.Logger,
		Metrics:    reg,
	})

	b, err := bot.New(bot.Config{
		Token:          cfg.TelegramToken,
		CooldownBurst:  cfg.CooldownBurst,
		CooldownWindow: cfg.CooldownWindow,
	}, svc, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Info().Msg("Shutting down")
		b.Stop()
	}()

	b.Start()
}
