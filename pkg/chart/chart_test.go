package chart

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"sync"
	"testing"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
	"github.com/liavyona/covid-stats-bot/pkg/stats"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func timeline(t *testing.T, days int) stats.Timeline {
	t.Helper()
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	points := make([]stats.Point, days)
	for i := range points {
		n := int64(i)
		points[i] = stats.Point{Date: start.AddDate(0, 0, i), Cases: n * n * 100, Deaths: n * 3, Recovered: n * 40}
	}
	tl, err := stats.NewTimeline(points)
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	return tl
}

func TestRenderRepeatedly(t *testing.T) {
	r := NewRenderer(1, metrics.NewRegistry())
	tl := timeline(t, 30)
	zeros, err := stats.NewTimeline([]stats.Point{
		{Date: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}

	for i := 0; i < 100; i++ {
		img, err := r.Render(context.Background(), tl, Options{Log: i%2 == 0})
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if !bytes.HasPrefix(img, pngSignature) {
			t.Fatalf("render %d is not a png", i)
		}
	}
	for _, log := range []bool{false, true} {
		img, err := r.Render(context.Background(), zeros, Options{Log: log})
		if err != nil {
			t.Fatalf("all-zero render (log=%v): %v", log, err)
		}
		if !bytes.HasPrefix(img, pngSignature) {
			t.Fatalf("all-zero render (log=%v) is not a png", log)
		}
	}
}

func TestRenderConcurrently(t *testing.T) {
	r := NewRenderer(2, metrics.NewRegistry())
	tl := timeline(t, 30)

	var wg sync.WaitGroup
	failures := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(log bool) {
			defer wg.Done()
			img, err := r.Render(context.Background(), tl, Options{Log: log})
			if err != nil {
				failures <- err
				return
			}
			if !bytes.HasPrefix(img, pngSignature) {
				failures <- errors.New("output is not a png")
			}
		}(i%2 == 0)
	}
	wg.Wait()
	close(failures)
	for err := range failures {
		t.Error(err)
	}
}

func TestRenderEmptyTimeline(t *testing.T) {
	_, err := NewRenderer(1, nil).Render(context.Background(), stats.Timeline{}, Options{})
	if !errors.Is(err, errs.ErrEmptyTimeline) {
		t.Fatalf("expected empty timeline error, got %v", err)
	}
}

func TestRenderLogWithZeros(t *testing.T) {
	// day 0 is all zeros
	img, err := NewRenderer(1, nil).Render(context.Background(), timeline(t, 10), Options{Log: true, Title: "France"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(img, pngSignature) {
		t.Fatal("output is not a png")
	}
}

func TestRenderSinglePoint(t *testing.T) {
	for _, log := range []bool{false, true} {
		img, err := NewRenderer(1, nil).Render(context.Background(), timeline(t, 1), Options{Log: log})
		if err != nil {
			t.Fatalf("Render(log=%v): %v", log, err)
		}
		if !bytes.HasPrefix(img, pngSignature) {
			t.Fatalf("Render(log=%v) is not a png", log)
		}
	}
}

func TestRenderSeries(t *testing.T) {
	r := NewRenderer(1, nil)
	for _, series := range [][]string{{"deaths"}, {"Cases", "recovered"}, nil} {
		img, err := r.Render(context.Background(), timeline(t, 10), Options{Series: series})
		if err != nil {
			t.Fatalf("Render(%v): %v", series, err)
		}
		if !bytes.HasPrefix(img, pngSignature) {
			t.Fatalf("Render(%v) is not a png", series)
		}
	}

	_, err := r.Render(context.Background(), timeline(t, 10), Options{Series: []string{"vaccinated"}})
	if !errors.Is(err, errs.ErrBadArgument) {
		t.Fatalf("expected bad argument, got %v", err)
	}
}

func TestPickSeries(t *testing.T) {
	picked, err := pickSeries([]string{" Deaths "})
	if err != nil {
		t.Fatalf("pickSeries: %v", err)
	}
	if len(picked) != 1 || picked[0].label != "deaths" {
		t.Fatalf("picked %v", picked)
	}
	if all, _ := pickSeries(nil); len(all) != len(SeriesNames) {
		t.Fatalf("empty selection picked %d series", len(all))
	}
	if IsSeries("all") || !IsSeries("recovered") {
		t.Fatal("IsSeries disagrees with SeriesNames")
	}
}

func TestLegendBox(t *testing.T) {
	p := plot.New()
	p.Legend.Top = true
	p.Legend.Left = true
	rec := &recorder.Canvas{}
	c := draw.NewCanvas(rec, Width, Height)

	legendBox{color: legendFill}.Plot(c, p)
	if len(rec.Actions) != 0 {
		t.Fatalf("empty legend drew %d actions", len(rec.Actions))
	}

	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	p.Legend.Add("cases", line)
	legendBox{color: legendFill}.Plot(c, p)

	var colored, filled bool
	for _, a := range rec.Actions {
		switch a := a.(type) {
		case *recorder.SetColor:
			colored = colored || a.Color == color.Color(legendFill)
		case *recorder.Fill:
			filled = len(a.Path) > 0
		}
	}
	if !colored || !filled {
		t.Fatalf("legend background not drawn: %v", rec.Actions)
	}
}

func TestRenderWaitsForSlot(t *testing.T) {
	r := NewRenderer(1, nil)
	if !r.sem.TryAcquire(1) {
		t.Fatal("slot should be free")
	}
	defer r.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := r.Render(ctx, timeline(t, 3), Options{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestWeekTicks(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 20)
	ticks := weekTicks{start: start}.Ticks(float64(start.Unix()), float64(end.Unix()))
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	want := []string{"01/03", "08/03", "15/03"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
	}
}

func TestShortCount(t *testing.T) {
	cases := map[float64]string{0: "0", 100: "100", 1000: "1K", 2500: "2.5K", 1e6: "1M", 1e7: "10M"}
	for in, want := range cases {
		if got := shortCount(in); got != want {
			t.Errorf("shortCount(%v) = %q, want %q", in, got, want)
		}
	}
}
