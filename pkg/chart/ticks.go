package chart

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// weekTicks labels every seventh day starting at start.
type weekTicks struct {
	start time.Time
}

func (w weekTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for d := w.start; float64(d.Unix()) <= max; d = d.AddDate(0, 0, TickEvery) {
		if v := float64(d.Unix()); v >= min {
			ticks = append(ticks, plot.Tick{Value: v, Label: d.UTC().Format(TickLayout)})
		}
	}
	return ticks
}

// majorTicks keeps only the labelled ticks of the wrapped marker and
// shortens their labels.
type majorTicks struct {
	plot.Ticker
}

func (m majorTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, t := range m.Ticker.Ticks(min, max) {
		if t.IsMinor() {
			continue
		}
		t.Label = shortCount(t.Value)
		ticks = append(ticks, t)
	}
	return ticks
}

func shortCount(v float64) string {
	switch {
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', -1, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', -1, 64) + "K"
	}
	return humanize.Comma(int64(v))
}
