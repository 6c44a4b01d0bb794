// Package metrics exposes Prometheus collectors for form events.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Option configures the collectors.
type Option func(*options)

type options struct {
	namespace string
	registry  prometheus.Registerer
	buckets   []float64
}

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		if namespace != "" {
			o.namespace = namespace
		}
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(o *options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// Recorder holds the form collectors. A nil *Recorder records nothing.
type Recorder struct {
	events          *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	fieldFailures   *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors.
func New(opts ...Option) *Recorder {
	o := options{
		namespace: "quizform",
		registry:  prometheus.DefaultRegisterer,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&o)
	}
	factory := promauto.With(o.registry)

	return &Recorder{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "form_events_total",
			Help:      "Form events handled, by kind.",
		}, []string{"event"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "form_submissions_total",
			Help:      "Submit attempts, by outcome.",
		}, []string{"outcome"}),
		fieldFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "form_field_failures_total",
			Help:      "Fields that blocked a submission.",
		}, []string{"field"}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method and status.",
		}, []string{"method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   o.buckets,
		}, []string{"method"}),
	}
}

// Event counts a form event such as "change", "blur" or "delete".
func (r *Recorder) Event(event string) {
	if r == nil {
		return
	}
	r.events.WithLabelValues(event).Inc()
}

// Submission counts a submit outcome: "blocked", "accepted" or "completed".
func (r *Recorder) Submission(outcome string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(outcome).Inc()
}

// FieldFailure counts a field that blocked a submission.
func (r *Recorder) FieldFailure(field string) {
	if r == nil {
		return
	}
	r.fieldFailures.WithLabelValues(field).Inc()
}

// Request records one HTTP request.
func (r *Recorder) Request(method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
