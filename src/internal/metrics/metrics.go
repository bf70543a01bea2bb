package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by middleware and services.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordSessionCreated()
	RecordResolveFailure(reason string)
	RecordLLMCall(result string)
}

// LLM call results
const (
	LLMResultSuccess  = "success"
	LLMResultFallback = "fallback"
	LLMResultStub     = "stub"
)

type Collector struct {
	requests        *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	sessionsCreated prometheus.Counter
	resolveFailures *prometheus.CounterVec
	llmCalls        *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizpulse_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bizpulse_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bizpulse_sessions_created_total",
			Help: "Sessions created from identity provider exchanges.",
		}),
		resolveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizpulse_session_resolve_failures_total",
			Help: "Rejected session resolutions by reason.",
		}, []string{"reason"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizpulse_llm_calls_total",
			Help: "LLM gateway calls by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestLatency,
		c.sessionsCreated,
		c.resolveFailures,
		c.llmCalls,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordSessionCreated() {
	c.sessionsCreated.Inc()
}

func (c *Collector) RecordResolveFailure(reason string) {
	c.resolveFailures.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordLLMCall(result string) {
	c.llmCalls.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type noopRecorder struct{}

// Noop discards everything. Useful in tests.
func Noop() Recorder { return noopRecorder{} }

func (noopRecorder) RecordRequest(string, string, int, time.Duration) {}
func (noopRecorder) RecordSessionCreated() {}
func (noopRecorder) RecordResolveFailure(string) {}
func (noopRecorder) RecordLLMCall(string) {}
