// Package command answers the bot's stat, top and graph commands with
// formatted responses. Hosts parse user input; this package validates it,
// fetches what it needs and shapes the reply.
package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/liavyona/covid-stats-bot/pkg/chart"
	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/format"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
	"github.com/liavyona/covid-stats-bot/pkg/names"
	"github.com/liavyona/covid-stats-bot/pkg/stats"
)

const (
	DefaultTimeout = 10 * time.Second
	TitlePrefix    = "Coronavirus (COVID-19) Cases | "
	GlobalName     = "Global"
	stateCountry   = "USA"
)

type Repository interface {
	CountryToday(ctx context.Context, name string) (stats.CountryRecord, error)
	GlobalToday(ctx context.Context) (stats.GlobalRecord, error)
	StateToday(ctx context.Context, name string) (stats.StateRecord, error)
	TopCountries(ctx context.Context, key stats.SortKey, n int) ([]stats.CountryRecord, error)
	GlobalTimeline(ctx context.Context) (stats.Timeline, error)
	CountryTimeline(ctx context.Context, name string) (stats.Timeline, error)
}

type Renderer interface {
	Render(ctx context.Context, tl stats.Timeline, opts chart.Options) ([]byte, error)
}

type Options struct {
	Repository Repository
	Renderer   Renderer
	Names      *names.Normalizer
	Timeout    time.Duration
	Logger     *zerolog.Logger
	Metrics    *metrics.Registry
}

// Service is safe for concurrent use.
type Service struct {
	repo     Repository
	renderer Renderer
	names    *names.Normalizer
	timeout  time.Duration
	logger   *zerolog.Logger
	metrics  *metrics.Registry
}

func New(opts Options) *Service {
	s := &Service{
		repo:     opts.Repository,
		renderer: opts.Renderer,
		names:    opts.Names,
		timeout:  opts.Timeout,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
	if s.names == nil {
		s.names = names.Default
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.logger == nil {
		nop := zerolog.Nop()
		s.logger = &nop
	}
	return s
}

// IsGlobal reports whether location asks for worldwide figures.
func IsGlobal(location string) bool {
	switch strings.ToLower(strings.TrimSpace(location)) {
	case "", "all", "global", "world":
		return true
	}
	return false
}

func (s *Service) run(ctx context.Context, name string, fn func(ctx context.Context) (*format.Response, error)) (*format.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	resp, err := fn(ctx)
	s.metrics.ObserveCommand(name, err)
	if err != nil {
		s.logger.Warn().Str("command", name).Dur("took", time.Since(start)).Err(err).Msg("Command failed")
		return nil, err
	}
	s.logger.Debug().Str("command", name).Str("title", resp.Title).Dur("took", time.Since(start)).Msg("Command answered")
	return resp, nil
}

// Stat answers with today's figures for the world, a country, or a US state
// when state is set.
func (s *Service) Stat(ctx context.Context, location, state string) (*format.Response, error) {
	return s.run(ctx, "stat", func(ctx context.Context) (*format.Response, error) {
		if strings.TrimSpace(state) != "" {
			return s.stateStat(ctx, location, state)
		}
		if IsGlobal(location) {
			rec, err := s.repo.GlobalToday(ctx)
			if err != nil {
				return nil, err
			}
			fields := append(format.Record(rec), rates(rec.Cases, rec.Deaths, rec.Recovered, true)...)
			return &format.Response{Title: TitlePrefix + GlobalName, Fields: fields}, nil
		}
		rec, err := s.repo.CountryToday(ctx, s.names.Normalize(location))
		if err != nil {
			return nil, err
		}
		fields := append(format.Record(rec), rates(rec.Cases, rec.Deaths, rec.Recovered, true)...)
		return &format.Response{Title: TitlePrefix + rec.Country, Fields: fields}, nil
	})
}

func (s *Service) stateStat(ctx context.Context, location, state string) (*format.Response, error) {
	country := s.names.Normalize(location)
	name := names.State(state)
	if country != stateCountry {
		return nil, &errs.CountryError{Name: name + ", " + country}
	}
	rec, err := s.repo.StateToday(ctx, name)
	if err != nil {
		return nil, err
	}
	fields := append(format.Record(rec), rates(rec.Cases, rec.Deaths, rec.Recovered, false)...)
	return &format.Response{Title: TitlePrefix + rec.State + ", " + country, Fields: fields}, nil
}

// rates derives mortality and, when withRecovery, recovery percentages.
// Nothing is derived without cases.
func rates(cases, deaths, recovered stats.Count, withRecovery bool) []format.Field {
	if cases <= 0 {
		return nil
	}
	fields := []format.Field{{Name: "Mortality Rate:", Value: percent(deaths, cases)}}
	if withRecovery {
		fields = append(fields, format.Field{Name: "Recovery Rate:", Value: percent(recovered, cases)})
	}
	return fields
}

func percent(part, whole stats.Count) string {
	return fmt.Sprintf("%.2f%%", float64(part)/float64(whole)*100)
}

// Top answers with the n countries ranked highest by key. An empty key ranks
// by today's cases and n <= 0 means stats.DefaultTop.
func (s *Service) Top(ctx context.Context, key string, n int) (*format.Response, error) {
	return s.run(ctx, "top", func(ctx context.Context) (*format.Response, error) {
		sortKey := stats.SortTodayCases
		if strings.TrimSpace(key) != "" {
			var err error
			if sortKey, err = stats.ParseSortKey(key); err != nil {
				return nil, err
			}
		}
		if n <= 0 {
			n = stats.DefaultTop
		}
		top, err := s.repo.TopCountries(ctx, sortKey, n)
		if err != nil {
			return nil, err
		}
		fields := make([]format.Field, len(top))
		for i, rec := range top {
			fields[i] = format.Field{
				Name:  fmt.Sprintf("%d. %s", i+1, rec.Country),
				Value: format.Value(string(sortKey), rec.Value(sortKey)),
			}
		}
		label := strings.TrimSuffix(format.Label(string(sortKey)), ":")
		return &format.Response{Title: fmt.Sprintf("Top %d Countries by %s", len(top), label), Fields: fields}, nil
	})
}

// GraphKind picks the chart's y axis scale.
type GraphKind string

const (
	Linear GraphKind = "linear"
	Log    GraphKind = "log"
)

func ParseGraphKind(s string) (GraphKind, error) {
	switch k := GraphKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Linear, Log:
		return k, nil
	case "":
		return Linear, nil
	}
	return "", errs.BadArgument(fmt.Sprintf("%q is not a graph type, use linear or log", s))
}

// AllSeries asks for every series on one chart.
const AllSeries = "all"

// ParseSeries turns a series name into chart.Options.Series. Empty and
// AllSeries give nil, which plots everything.
func ParseSeries(s string) ([]string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "" || name == AllSeries:
		return nil, nil
	case chart.IsSeries(name):
		return []string{name}, nil
	}
	return nil, errs.BadArgument(fmt.Sprintf("%q is not a graph series, use %s or %s", s, strings.Join(chart.SeriesNames, ", "), AllSeries))
}

// GraphTarget splits the words after a graph type into an optional series
// and the location. A leading "all" reads as every series, leaving the
// location to whatever follows.
func GraphTarget(args []string) (series, location string) {
	if len(args) > 0 && (chart.IsSeries(args[0]) || strings.EqualFold(args[0], AllSeries)) {
		return args[0], strings.Join(args[1:], " ")
	}
	return "", strings.Join(args, " ")
}

// Graph answers with a chart of the world's or a country's timeline, plus the
// latest totals and their change since the day before. series narrows the
// chart to one of chart.SeriesNames.
func (s *Service) Graph(ctx context.Context, kind, series, location string) (*format.Response, error) {
	return s.run(ctx, "graph", func(ctx context.Context) (*format.Response, error) {
		k, err := ParseGraphKind(kind)
		if err != nil {
			return nil, err
		}
		picked, err := ParseSeries(series)
		if err != nil {
			return nil, err
		}
		name := GlobalName
		var tl stats.Timeline
		if IsGlobal(location) {
			tl, err = s.repo.GlobalTimeline(ctx)
		} else {
			name = s.names.ForChart(location)
			tl, err = s.repo.CountryTimeline(ctx, name)
		}
		if err != nil {
			return nil, err
		}
		latest, ok := tl.Latest()
		if !ok {
			return nil, errs.EmptyTimeline(fmt.Sprintf("no timeline data for %s", name))
		}
		delta, _ := tl.Delta()

		title := "Linear Graph"
		if k == Log {
			title = "Logarithmic Graph"
		}
		if len(picked) == 1 {
			title = cases.Title(language.English).String(picked[0]) + " " + title
		}
		img, err := s.renderer.Render(ctx, tl, chart.Options{Log: k == Log, Title: name + " " + title, Series: picked})
		if err != nil {
			return nil, err
		}
		return &format.Response{
			Title: TitlePrefix + name,
			Fields: []format.Field{
				{Name: "Date:", Value: latest.Key()},
				{Name: "Cases:", Value: withDelta(latest.Cases, delta.Cases)},
				{Name: "Deaths:", Value: withDelta(latest.Deaths, delta.Deaths)},
				{Name: "Recovered:", Value: withDelta(latest.Recovered, delta.Recovered)},
			},
			Image: img,
		}, nil
	})
}

func withDelta(total, delta int64) string {
	v := format.Value("", total)
	if delta > 0 {
		v += " (+" + format.Value("", delta) + ")"
	}
	return v
}
