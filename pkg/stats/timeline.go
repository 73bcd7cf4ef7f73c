package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
)

const DateLayout = "2006-01-02"

// some upstreams key their series with US-style short dates
var dateLayouts = []string{DateLayout, "1/2/06", "1/2/2006"}

// Point is the cumulative count for one calendar day.
type Point struct {
	Date      time.Time
	Cases     int64
	Deaths    int64
	Recovered int64
}

func (p Point) Key() string { return p.Date.Format(DateLayout) }

// Timeline is a date-ascending series with one point per day.
type Timeline struct {
	points []Point
	index  map[string]int
}

// NewTimeline keeps the order points arrive in, overwriting repeated days in
// place, and then stable-sorts by date so an ascending source is left as is.
func NewTimeline(points []Point) (Timeline, error) {
	t := Timeline{index: make(map[string]int, len(points))}
	for _, p := range points {
		if p.Cases < 0 || p.Deaths < 0 || p.Recovered < 0 {
			return Timeline{}, errs.Parse(fmt.Sprintf("negative count on %s", p.Key()), nil)
		}
		if i, ok := t.index[p.Key()]; ok {
			t.points[i] = p
			continue
		}
		t.index[p.Key()] = len(t.points)
		t.points = append(t.points, p)
	}
	sort.SliceStable(t.points, func(i, j int) bool { return t.points[i].Date.Before(t.points[j].Date) })
	for i, p := range t.points {
		t.index[p.Key()] = i
	}
	return t, nil
}

func (t Timeline) Len() int { return len(t.points) }

// Points returns a copy of the series.
func (t Timeline) Points() []Point {
	return append([]Point(nil), t.points...)
}

// Get looks a day up by its YYYY-MM-DD key.
func (t Timeline) Get(date string) (Point, bool) {
	i, ok := t.index[date]
	if !ok {
		return Point{}, false
	}
	return t.points[i], true
}

func (t Timeline) Latest() (Point, bool) {
	if len(t.points) == 0 {
		return Point{}, false
	}
	return t.points[len(t.points)-1], true
}

// Delta is the latest day minus the day before it. With a single point the
// whole count is new.
func (t Timeline) Delta() (Point, bool) {
	last, ok := t.Latest()
	if !ok {
		return Point{}, false
	}
	if len(t.points) == 1 {
		return last, true
	}
	prev := t.points[len(t.points)-2]
	return Point{
		Date:      last.Date,
		Cases:     last.Cases - prev.Cases,
		Deaths:    last.Deaths - prev.Deaths,
		Recovered: last.Recovered - prev.Recovered,
	}, true
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errs.Parse(fmt.Sprintf("unrecognised date %q", s), nil)
}

// field tells a missing counter apart from an explicit null.
type field struct {
	set bool
	v   Count
}

func (f *field) UnmarshalJSON(b []byte) error {
	f.set = true
	return f.v.UnmarshalJSON(b)
}

type pointFields struct {
	Cases     field `json:"cases"`
	Deaths    field `json:"deaths"`
	Recovered field `json:"recovered"`
}

func (f pointFields) point(date string) (Point, error) {
	if !f.Cases.set || !f.Deaths.set || !f.Recovered.set {
		return Point{}, errs.Parse(fmt.Sprintf("timeline entry %s lacks cases/deaths/recovered", date), nil)
	}
	d, err := parseDate(date)
	if err != nil {
		return Point{}, err
	}
	return Point{Date: d, Cases: int64(f.Cases.v), Deaths: int64(f.Deaths.v), Recovered: int64(f.Recovered.v)}, nil
}

// decodeDateObject reads {"<date>": {"cases":..,"deaths":..,"recovered":..}, ...}
// keeping key order, which a Go map would lose.
func decodeDateObject(raw []byte) (Timeline, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return Timeline{}, errs.Parse("decode timeline", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Timeline{}, errs.Parse("timeline payload is not an object", nil)
	}
	var points []Point
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Timeline{}, errs.Parse("decode timeline", err)
		}
		date, _ := tok.(string)
		var f pointFields
		if err := dec.Decode(&f); err != nil {
			return Timeline{}, errs.Parse(fmt.Sprintf("decode timeline entry %s", date), err)
		}
		p, err := f.point(date)
		if err != nil {
			return Timeline{}, err
		}
		points = append(points, p)
	}
	return NewTimeline(points)
}

type countryTimelinePayload struct {
	Data *struct {
		Timeline []struct {
			Date *string `json:"date"`
			pointFields
		} `json:"timeline"`
	} `json:"data"`
}

func decodeCountryTimeline(raw []byte) (Timeline, error) {
	var payload countryTimelinePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Timeline{}, errs.Parse("decode country timeline", err)
	}
	if payload.Data == nil || payload.Data.Timeline == nil {
		return Timeline{}, errs.Parse("country timeline lacks data.timeline", nil)
	}
	points := make([]Point, 0, len(payload.Data.Timeline))
	for i, e := range payload.Data.Timeline {
		if e.Date == nil {
			return Timeline{}, errs.Parse(fmt.Sprintf("timeline entry #%d has no date", i), nil)
		}
		p, err := e.point(*e.Date)
		if err != nil {
			return Timeline{}, err
		}
		points = append(points, p)
	}
	return NewTimeline(points)
}
