// Package gateway talks to the upstream COVID-19 statistics REST API.
package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/net/context"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
	"github.com/liavyona/covid-stats-bot/pkg/metrics"
)

const (
	PoolSize   = 5
	MaxRetries = 10

	maxBodyBytes   = 32 << 20
	chromeDisguise = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/50.0.2661.75 Safari/537.36"
)

// Param is one query string pair. Order is preserved on the wire.
type Param struct {
	Key   string
	Value string
}

// Query builds params from alternating keys and values.
func Query(kv ...string) []Param {
	params := make([]Param, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params = append(params, Param{Key: kv[i], Value: kv[i+1]})
	}
	return params
}

type Options struct {
	BaseURL   string
	Logger    *zerolog.Logger
	Metrics   *metrics.Registry
	Transport http.RoundTripper
}

// Client is safe for concurrent use; all calls share one connection pool.
type Client struct {
	base    string
	http    *retryablehttp.Client
	logger  *zerolog.Logger
	metrics *metrics.Registry
}

func New(opts Options) *Client {
	base := opts.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	transport := opts.Transport
	if transport == nil {
		transport = pooledTransport()
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport}
	rc.RetryMax = MaxRetries
	rc.RetryWaitMin = 50 * time.Millisecond
	rc.RetryWaitMax = time.Second
	rc.CheckRetry = retryConnectionErrors
	rc.Logger = retryLogger{logger}

	return &Client{base: base, http: rc, logger: logger, metrics: opts.Metrics}
}

func pooledTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        PoolSize,
		MaxIdleConnsPerHost: PoolSize,
		MaxConnsPerHost:     PoolSize,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
}

// retryConnectionErrors retries only when no response came back at all.
// Status codes are the caller's business.
func retryConnectionErrors(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err == nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// URL joins path segments with "/" under the base URL. Query pairs are joined
// with "," rather than "&"; the upstream expects that form.
func (c *Client) URL(path []string, query ...Param) string {
	segments := make([]string, len(path))
	for i, p := range path {
		segments[i] = url.PathEscape(p)
	}
	u := c.base + strings.Join(segments, "/")
	if len(query) == 0 {
		return u
	}
	pairs := make([]string, len(query))
	for i, p := range query {
		pairs[i] = url.QueryEscape(p.Key) + "=" + url.QueryEscape(p.Value)
	}
	return u + "?" + strings.Join(pairs, ",")
}

// Fetch performs one GET and returns the body. JSON bodies are checked for
// well-formedness before being handed back.
func (c *Client) Fetch(ctx context.Context, path []string, query ...Param) (body *Body, err error) {
	u := c.URL(path, query...)
	endpoint := "root"
	if len(path) > 0 {
		endpoint = path[0]
	}
	start := time.Now()
	defer func() {
		c.metrics.ObserveFetch(endpoint, time.Since(start), err)
		if err != nil {
			c.logger.Err(err).Str("url", u).Msg("Gateway fetch failed")
		}
	}()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errs.Fetch("build request", err)
	}
	req.Header.Set("User-Agent", chromeDisguise)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	c.logger.Debug().Str("url", u).Msg("Fetching from gateway")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Fetch(fmt.Sprintf("GET %s", endpoint), err)
	}
	defer resp.Body.Close() // nolint: errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.Fetch(fmt.Sprintf("read %s response", endpoint), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Fetch(fmt.Sprintf("GET %s returned %s", endpoint, resp.Status), nil)
	}

	body = &Body{ContentType: resp.Header.Get("Content-Type"), Raw: raw}
	if body.IsJSON() && !json.Valid(raw) {
		return nil, errs.Parse(fmt.Sprintf("%s returned malformed JSON", endpoint), nil)
	}
	return body, nil
}

// Body is a fetched payload.
type Body struct {
	ContentType string
	Raw         []byte
}

func (b *Body) IsJSON() bool {
	return strings.Contains(strings.ToLower(b.ContentType), "json")
}

func (b *Body) Text() string {
	return string(b.Raw)
}

// Decode unmarshals a JSON body into v.
func (b *Body) Decode(v interface{}) error {
	if !b.IsJSON() {
		return errs.Parse(fmt.Sprintf("expected JSON, got %q", b.ContentType), nil)
	}
	if err := json.Unmarshal(b.Raw, v); err != nil {
		return errs.Parse("decode payload", err)
	}
	return nil
}

type retryLogger struct {
	l *zerolog.Logger
}

func (r retryLogger) Error(msg string, kv ...interface{}) { r.l.Error().Fields(kv).Msg(msg) }
func (r retryLogger) Warn(msg string, kv ...interface{})  { r.l.Warn().Fields(kv).Msg(msg) }
func (r retryLogger) Info(msg string, kv ...interface{})  { r.l.Debug().Fields(kv).Msg(msg) }
func (r retryLogger) Debug(msg string, kv ...interface{}) { r.l.Debug().Fields(kv).Msg(msg) }
