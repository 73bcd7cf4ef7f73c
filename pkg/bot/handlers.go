package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	tele "gopkg.in/telebot.v3"

	"github.com/liavyona/covid-stats-bot/pkg/command"
	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/format"
	"github.com/liavyona/covid-stats-bot/pkg/stats"
)

const (
	statHelp = "Usage: /stat <country|all> [state]\n" +
		"Show confirmed cases, deaths and recoveries for a country or the whole world.\n" +
		"Countries may be full names or ISO 3166-1 codes: /stat Italy, /stat IT, /stat ITA\n" +
		"Quote names with spaces: /stat \"South Korea\"\n" +
		"For a US state put it after the country: /stat US California or /stat US CA"
	topHelp = "Usage: /top [sort key] [count]\n" +
		"Rank countries, by today's cases and 10 rows unless told otherwise."
	graphHelp = "Usage: /graph <linear|log> [cases|deaths|recovered|all] [country|all]\n" +
		"Draw cases, deaths and recovered over time, or just one of them. Same rules for country names apply."
	helpHelp = "Usage: /help [command]\n" +
		"Show what a command does."

	noDataMsg     = "There is no available data for this location | Use /help for more info on commands"
	upstreamMsg   = "The stats service is unavailable right now, try again later"
	timeoutMsg    = "The stats service took too long to answer, try again later"
	emptyMsg      = "There is no timeline data for this location"
	unexpectedMsg = "Something went wrong while answering that command"
)

func (b *Bot) handleStat(c tele.Context) error {
	args := splitArgs(c.Message().Payload)
	resp, err := b.commands.Stat(context.Background(), arg(args, 0), arg(args, 1))
	return b.reply(c, "stat", resp, err)
}

func (b *Bot) handleTop(c tele.Context) error {
	args := splitArgs(c.Message().Payload)
	n := 0
	if s := arg(args, 1); s != "" {
		var err error
		if n, err = cast.ToIntE(s); err != nil || n <= 0 {
			return c.Send(topHelp)
		}
	}
	resp, err := b.commands.Top(context.Background(), arg(args, 0), n)
	return b.reply(c, "top", resp, err)
}

func (b *Bot) handleGraph(c tele.Context) error {
	args := splitArgs(c.Message().Payload)
	if len(args) == 0 {
		return c.Send(graphHelp)
	}
	series, location := command.GraphTarget(args[1:])
	resp, err := b.commands.Graph(context.Background(), args[0], series, location)
	return b.reply(c, "graph", resp, err)
}

func (b *Bot) handleHelp(c tele.Context) error {
	args := splitArgs(c.Message().Payload)
	if len(args) > 0 {
		return c.Send(b.help.Get(strings.TrimPrefix(args[0], "/")))
	}
	var sb strings.Builder
	sb.WriteString("Bot Help\n")
	for _, cmd := range b.help.Commands() {
		sb.WriteString("\n/" + cmd)
		if aliases := b.help.Aliases(cmd); len(aliases) > 0 {
			sb.WriteString(" (/" + strings.Join(aliases, ", /") + ")")
		}
		sb.WriteString("\n" + b.help.Get(cmd) + "\n")
	}
	return c.Send(sb.String())
}

func (b *Bot) reply(c tele.Context, command string, resp *format.Response, err error) error {
	if err != nil {
		b.logger.Info().Str("command", command).Str("payload", c.Message().Payload).Err(err).Msg("Command rejected")
		return c.Send(userMessage(err))
	}
	text := render(resp)
	if len(resp.Image) > 0 {
		return c.Send(&tele.Photo{File: tele.FromReader(bytes.NewReader(resp.Image)), Caption: text})
	}
	return c.Send(text)
}

func render(resp *format.Response) string {
	var sb strings.Builder
	sb.WriteString(resp.Title)
	sb.WriteString("\n")
	for _, f := range resp.Fields {
		sb.WriteString("\n" + f.Name + " " + f.Value)
	}
	return sb.String()
}

// userMessage turns a command failure into something fit to show in chat.
func userMessage(err error) string {
	var ce *errs.CountryError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return noDataMsg
	case errors.As(err, &ce):
		return fmt.Sprintf("%s | Try the full country name", ce.Error())
	case errors.Is(err, errs.ErrInvalidSortKey):
		keys := make([]string, len(stats.SortKeys))
		for i, k := range stats.SortKeys {
			keys[i] = string(k)
		}
		return fmt.Sprintf("%s | Valid keys: %s", err.Error(), strings.Join(keys, ", "))
	case errors.Is(err, errs.ErrBadArgument):
		return err.Error()
	case errors.Is(err, errs.ErrEmptyTimeline):
		return emptyMsg
	case errors.Is(err, context.DeadlineExceeded):
		return timeoutMsg
	case errors.Is(err, errs.ErrUpstreamFetch), errors.Is(err, errs.ErrUpstreamParse):
		return upstreamMsg
	}
	return unexpectedMsg
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// splitArgs splits on whitespace, keeping double-quoted runs together.
func splitArgs(payload string) []string {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		pending bool
	)
	flush := func() {
		if pending {
			args = append(args, cur.String())
		}
		cur.Reset()
		pending = false
	}
	for _, r := range payload {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			flush()
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	flush()
	return args
}
