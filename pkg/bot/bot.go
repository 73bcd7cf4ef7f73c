// Package bot serves the stats commands over Telegram.
package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"

	"github.com/liavyona/covid-stats-bot/pkg/format"
	"github.com/liavyona/covid-stats-bot/pkg/help"
)

// Commands is the command service the handlers call into.
type Commands interface {
	Stat(ctx context.Context, location, state string) (*format.Response, error)
	Top(ctx context.Context, key string, n int) (*format.Response, error)
	Graph(ctx context.Context, kind, series, location string) (*format.Response, error)
}

type Config struct {
	Token          string
	CooldownBurst  int
	CooldownWindow time.Duration
}

type Bot struct {
	api      *tele.Bot
	commands Commands
	help     *help.Registry
	cooldown *Cooldown
	logger   *zerolog.Logger
}

func New(cfg Config, commands Commands, logger *zerolog.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Err(err).Msg("Handler failed")
		},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		api:      api,
		commands: commands,
		help:     NewHelp(),
		cooldown: NewCooldown(cfg.CooldownBurst, cfg.CooldownWindow),
		logger:   logger,
	}
	b.register()
	return b, nil
}

func (b *Bot) Start() {
	b.logger.Info().Str("username", b.api.Me.Username).Msg("Bot started")
	b.api.Start()
}

func (b *Bot) Stop() {
	b.api.Stop()
}

func (b *Bot) register() {
	for _, r := range b.routes() {
		for _, endpoint := range append([]string{r.command}, r.aliases...) {
			b.api.Handle("/"+endpoint, r.handler, b.limit)
		}
	}
}

type route struct {
	command string
	aliases []string
	usage   string
	handler tele.HandlerFunc
}

func (b *Bot) routes() []route {
	return []route{
		{"stat", []string{"stats", "statistic", "s", "cases"}, statHelp, b.handleStat},
		{"top", []string{"leaderboard"}, topHelp, b.handleTop},
		{"graph", []string{"g"}, graphHelp, b.handleGraph},
		{"help", []string{"h", "commands"}, helpHelp, b.handleHelp},
	}
}

// NewHelp builds the help registry for every command the bot answers.
func NewHelp() *help.Registry {
	r := help.NewRegistry()
	for _, rt := range (&Bot{}).routes() {
		r.Add(rt.command, rt.aliases, rt.usage)
	}
	return r
}
