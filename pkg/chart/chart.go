// Package chart draws a timeline as a PNG line chart.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
	"github.com/liavyona/covid-stats-bot/pkg/stats"
)

const (
	DPI         = 150
	Width       = 6.4 * vg.Inch
	Height      = 4.8 * vg.Inch
	TickLayout  = "02/01"
	TickEvery   = 7
	fillOpacity = 128
)

type series struct {
	label string
	color color.NRGBA
	value func(stats.Point) int64
}

var allSeries = []series{
	{"cases", color.NRGBA{R: 173, G: 216, B: 230, A: 255}, func(p stats.Point) int64 { return p.Cases }},
	{"deaths", color.NRGBA{R: 255, A: 255}, func(p stats.Point) int64 { return p.Deaths }},
	{"recovered", color.NRGBA{R: 144, G: 238, B: 144, A: 255}, func(p stats.Point) int64 { return p.Recovered }},
}

// SeriesNames lists what a chart can plot, in drawing order.
var SeriesNames = func() []string {
	names := make([]string, len(allSeries))
	for i, s := range allSeries {
		names[i] = s.label
	}
	return names
}()

// IsSeries reports whether name is one of SeriesNames.
func IsSeries(name string) bool {
	_, ok := findSeries(name)
	return ok
}

func findSeries(name string) (series, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range allSeries {
		if s.label == name {
			return s, true
		}
	}
	return series{}, false
}

func pickSeries(names []string) ([]series, error) {
	if len(names) == 0 {
		return allSeries, nil
	}
	picked := make([]series, 0, len(names))
	for _, name := range names {
		s, ok := findSeries(name)
		if !ok {
			return nil, errs.BadArgument(fmt.Sprintf("%q is not a series, use %s", name, strings.Join(SeriesNames, ", ")))
		}
		picked = append(picked, s)
	}
	return picked, nil
}

type Options struct {
	Log   bool
	Title string
	// Series picks what to plot by name. Empty plots every series.
	Series []string
}

// Renderer bounds how many charts are drawn at once.
type Renderer struct {
	sem     *semaphore.Weighted
	metrics *metrics.Registry
}

func NewRenderer(maxConcurrent int, m *metrics.Registry) *Renderer {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Renderer{sem: semaphore.NewWeighted(int64(maxConcurrent)), metrics: m}
}

// Render returns the PNG encoding of tl. An empty timeline is rejected.
func (r *Renderer) Render(ctx context.Context, tl stats.Timeline, opts Options) (img []byte, err error) {
	if tl.Len() == 0 {
		return nil, errs.EmptyTimeline("no data points to plot")
	}
	if _, err := pickSeries(opts.Series); err != nil {
		return nil, err
	}
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for a render slot: %w", err)
	}
	defer r.sem.Release(1)

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			img, err = nil, fmt.Errorf("rendering chart: %v", rec)
		}
		r.metrics.ObserveRender(time.Since(start), err)
	}()

	p, err := newPlot(tl, opts)
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func newPlot(tl stats.Timeline, opts Options) (*plot.Plot, error) {
	points := tl.Points()
	selected, err := pickSeries(opts.Series)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Linear Graph"
		if opts.Log {
			p.Title.Text = "Logarithmic Graph"
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	for _, s := range selected {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = float64(pt.Date.Unix())
			xys[i].Y = float64(s.value(pt))
			if opts.Log && xys[i].Y < 1 {
				xys[i].Y = 1
			}
		}
		line, marks, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("plotting %s: %w", s.label, err)
		}
		line.LineStyle.Color = s.color
		fill := s.color
		fill.A = fillOpacity
		line.FillColor = fill
		marks.GlyphStyle.Color = s.color
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		marks.GlyphStyle.Radius = vg.Points(2)
		p.Add(line, marks)
		p.Legend.Add(s.label, line, marks)
	}
	p.Add(legendBox{color: legendFill, pad: vg.Points(4)})

	p.X.Tick.Marker = weekTicks{start: points[0].Date}
	if p.X.Min == p.X.Max {
		p.X.Min -= float64(24 * time.Hour / time.Second)
		p.X.Max += float64(24 * time.Hour / time.Second)
	}

	p.Y.LineStyle.Width = 0
	if opts.Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = majorTicks{plot.LogTicks{Prec: -1}}
		if p.Y.Min < 1 {
			p.Y.Min = 1
		}
		if p.Y.Max <= p.Y.Min {
			p.Y.Max = p.Y.Min * 10
		}
	} else {
		p.Y.Tick.Marker = majorTicks{plot.DefaultTicks{}}
		p.Y.Min = 0
		if p.Y.Max <= p.Y.Min {
			p.Y.Max = p.Y.Min + 1
		}
	}
	return p, nil
}
