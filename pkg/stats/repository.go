// Package stats turns gateway payloads into typed country, state and timeline
// records. Nothing is cached: every call goes back to the gateway.
package stats

import (
	"fmt"

	"golang.org/x/net/context"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/gateway"
)

const DefaultTop = 10

// Fetcher is the part of the gateway client the repository needs.
type Fetcher interface {
	Fetch(ctx context.Context, path []string, query ...gateway.Param) (*gateway.Body, error)
}

type Repository struct {
	gw Fetcher
}

func NewRepository(gw Fetcher) *Repository {
	return &Repository{gw: gw}
}

// CountriesTable returns every country sorted server-side by key. An empty key
// sorts by todayCases.
func (r *Repository) CountriesTable(ctx context.Context, key SortKey) ([]CountryRecord, error) {
	if key == "" {
		key = SortTodayCases
	}
	if !key.Valid() {
		return nil, errs.InvalidSortKey(string(key))
	}
	body, err := r.gw.Fetch(ctx, []string{"countries"}, gateway.Param{Key: "sort", Value: string(key)})
	if err != nil {
		return nil, err
	}
	var table []CountryRecord
	if err := body.Decode(&table); err != nil {
		return nil, fmt.Errorf("countries table: %w", err)
	}
	return table, nil
}

// CountryToday returns the single record whose country equals name, ignoring case.
func (r *Repository) CountryToday(ctx context.Context, name string) (CountryRecord, error) {
	table, err := r.CountriesTable(ctx, SortTodayCases)
	if err != nil {
		return CountryRecord{}, err
	}
	return exactlyOne(table, name, func(c CountryRecord) string { return c.Country })
}

// TopCountries returns the first n rows of the table sorted by key.
func (r *Repository) TopCountries(ctx context.Context, key SortKey, n int) ([]CountryRecord, error) {
	if !key.Valid() {
		return nil, errs.InvalidSortKey(string(key))
	}
	table, err := r.CountriesTable(ctx, key)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(table) {
		n = len(table)
	}
	return table[:n], nil
}

// GlobalToday returns the worldwide summary.
func (r *Repository) GlobalToday(ctx context.Context) (GlobalRecord, error) {
	body, err := r.gw.Fetch(ctx, []string{"all"})
	if err != nil {
		return GlobalRecord{}, err
	}
	var rec GlobalRecord
	if err := body.Decode(&rec); err != nil {
		return GlobalRecord{}, fmt.Errorf("global summary: %w", err)
	}
	return rec, nil
}

// StateToday returns the single US state record whose name equals name, ignoring case.
func (r *Repository) StateToday(ctx context.Context, name string) (StateRecord, error) {
	body, err := r.gw.Fetch(ctx, []string{"states"})
	if err != nil {
		return StateRecord{}, err
	}
	var table []StateRecord
	if err := body.Decode(&table); err != nil {
		return StateRecord{}, fmt.Errorf("states table: %w", err)
	}
	return exactlyOne(table, name, func(s StateRecord) string { return s.State })
}

// GlobalTimeline reads the worldwide date-keyed series.
func (r *Repository) GlobalTimeline(ctx context.Context) (Timeline, error) {
	body, err := r.gw.Fetch(ctx, []string{"timeline", "global"})
	if err != nil {
		return Timeline{}, err
	}
	if !body.IsJSON() {
		return Timeline{}, errs.Parse(fmt.Sprintf("global timeline: expected JSON, got %q", body.ContentType), nil)
	}
	return decodeDateObject(body.Raw)
}

// CountryTimeline reads data.timeline for one country and keys it by date.
func (r *Repository) CountryTimeline(ctx context.Context, name string) (Timeline, error) {
	body, err := r.gw.Fetch(ctx, []string{"timeline", name})
	if err != nil {
		return Timeline{}, err
	}
	if !body.IsJSON() {
		return Timeline{}, errs.Parse(fmt.Sprintf("timeline for %s: expected JSON, got %q", name, body.ContentType), nil)
	}
	return decodeCountryTimeline(body.Raw)
}
