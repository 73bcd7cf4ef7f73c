package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry carries the process metrics. A nil *Registry is valid and records nothing.
type Registry struct {
	reg             *prometheus.Registry
	GatewayRequests *prometheus.CounterVec
	GatewayLatency  prometheus.Histogram
	ChartsRendered  *prometheus.CounterVec
	RenderLatency   prometheus.Histogram
	Commands        *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covidbot_gateway_requests_total",
		Help: "Upstream stats API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "covidbot_gateway_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	charts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covidbot_charts_rendered_total",
	}, []string{"outcome"})
	renderLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "covidbot_render_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covidbot_commands_total",
	}, []string{"command", "outcome"})

	r.MustRegister(requests, latency, charts, renderLatency, commands)
	return &Registry{
		reg:             r,
		GatewayRequests: requests,
		GatewayLatency:  latency,
		ChartsRendered:  charts,
		RenderLatency:   renderLatency,
		Commands:        commands,
	}
}

func (r *Registry) ObserveFetch(endpoint string, took time.Duration, err error) {
	if r == nil {
		return
	}
	r.GatewayRequests.WithLabelValues(endpoint, outcome(err)).Inc()
	r.GatewayLatency.Observe(took.Seconds())
}

func (r *Registry) ObserveRender(took time.Duration, err error) {
	if r == nil {
		return
	}
	r.ChartsRendered.WithLabelValues(outcome(err)).Inc()
	r.RenderLatency.Observe(took.Seconds())
}

func (r *Registry) ObserveCommand(command string, err error) {
	if r == nil {
		return
	}
	r.Commands.WithLabelValues(command, outcome(err)).Inc()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
