package main

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/liavyona/covid-stats-bot/pkg/chart"
	"github.com/liavyona/covid-stats-bot/pkg/command"
	"github.com/liavyona/covid-stats-bot/pkg/config"
	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/format"
	"github.com/liavyona/covid-stats-bot/pkg/gateway"
	"github.com/liavyona/covid-stats-bot/pkg/help"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
	"github.com/liavyona/covid-stats-bot/pkg/stats"
)

// Request is one command invocation, e.g. {"command": "stat", "args": ["US", "NY"]}.
type Request struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

var (
	cfg     *config.Config
	service *command.Service
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	// metrics are recorded but never scraped inside a lambda
	reg := metrics.NewRegistry()
	gw := gateway.New(gateway.Options{BaseURL: cfg.StatsAPIURL, Logger: &log.Logger, Metrics: reg})
	service = command.New(command.Options{
		Repository: stats.NewRepository(gw),
		Renderer:   chart.NewRenderer(cfg.RenderConcurrency, reg),
		Timeout:    cfg.CommandTimeout,
		Logger:     &log.Logger,
		Metrics:    reg,
	})
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func handleCommand(ctx context.Context, req Request) (*format.Response, error) {
	switch strings.ToLower(strings.TrimPrefix(req.Command, "/")) {
	case "stat", "stats", "statistic", "s", "cases":
		return service.Stat(ctx, arg(req.Args, 0), arg(req.Args, 1))
	case "top", "leaderboard":
		n := 0
		if s := arg(req.Args, 1); s != "" {
			var err error
			if n, err = cast.ToIntE(s); err != nil {
				log.Err(err).Str("count", s).Msg("Invalid leaderboard size")
				return nil, errs.BadArgument("count must be a whole number")
			}
		}
		return service.Top(ctx, arg(req.Args, 0), n)
	case "graph", "g":
		series, location := command.GraphTarget(req.Args[min(1, len(req.Args)):])
		return service.Graph(ctx, arg(req.Args, 0), series, location)
	}
	log.Info().Str("command", req.Command).Strs("args", req.Args).Msg("Unknown command")
	return nil, errs.BadArgument(help.NotFound)
}

func main() {
	if err := cfg.Check(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	lambda.Start(handleCommand)
}
