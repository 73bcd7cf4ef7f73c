package gateway

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/net/context"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
)

func TestURL(t *testing.T) {
	c := New(Options{BaseURL: "https://api.example/v3"})
	cases := []struct {
		path  []string
		query []Param
		want  string
	}{
		{[]string{"countries"}, Query("sort", "cases"), "https://api.example/v3/countries?sort=cases"},
		{[]string{"test_endpoint", "test_item"}, nil, "https://api.example/v3/test_endpoint/test_item"},
		{[]string{"test_endpoint"}, Query("param1", "val1", "param2", "val2"), "https://api.example/v3/test_endpoint?param1=val1,param2=val2"},
		{[]string{"timeline", "S. Korea"}, nil, "https://api.example/v3/timeline/S.%20Korea"},
	}
	for _, tc := range cases {
		if got := c.URL(tc.path, tc.query...); got != tc.want {
			t.Errorf("URL(%v, %v) = %q, want %q", tc.path, tc.query, got, tc.want)
		}
	}
}

func TestFetchSendsRequestAsBuilt(t *testing.T) {
	var gotPath, gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotAgent = r.URL.Path, r.URL.RawQuery, r.UserAgent()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"mock_content":"mock_content_val"}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL + "/"})
	body, err := c.Fetch(context.Background(), []string{"countries"}, Query("sort", "cases", "yesterday", "true")...)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPath != "/countries" || gotQuery != "sort=cases,yesterday=true" {
		t.Fatalf("request was %s?%s", gotPath, gotQuery)
	}
	if gotAgent != chromeDisguise {
		t.Fatalf("user agent %q", gotAgent)
	}
	var m map[string]string
	if err := body.Decode(&m); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m["mock_content"] != "mock_content_val" {
		t.Fatalf("decoded %v", m)
	}
}

func TestFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	body, err := New(Options{BaseURL: srv.URL}).Fetch(context.Background(), []string{"ping"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if body.IsJSON() || body.Text() != "pong" {
		t.Fatalf("body = %+v", body)
	}
	var v interface{}
	if err := body.Decode(&v); !errors.Is(err, errs.ErrUpstreamParse) {
		t.Fatalf("decoding text as JSON should be a parse error, got %v", err)
	}
}

func TestFetchNon2xxIsFetchErrorWithoutRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	reg := metrics.NewRegistry()
	_, err := New(Options{BaseURL: srv.URL, Metrics: reg}).Fetch(context.Background(), []string{"countries"})
	if !errors.Is(err, errs.ErrUpstreamFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if errors.Is(err, errs.ErrUpstreamParse) {
		t.Fatalf("fetch error must not look like a parse error")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("status errors are not retried, got %d hits", n)
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cases": 1`))
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).Fetch(context.Background(), []string{"countries"})
	if !errors.Is(err, errs.ErrUpstreamParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestFetchRetriesConnectionErrors(t *testing.T) {
	var calls int32
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return nil, errors.New("connection reset by peer")
		}
		rec := httptest.NewRecorder()
		rec.Header().Set("Content-Type", "application/json")
		rec.WriteString(`[]`)
		return rec.Result(), nil
	})

	c := New(Options{BaseURL: "http://gateway.test/", Transport: rt})
	if _, err := c.Fetch(context.Background(), []string{"countries"}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestFetchHonoursDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := New(Options{BaseURL: srv.URL}).Fetch(ctx, []string{"countries"})
	if !errors.Is(err, errs.ErrUpstreamFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
