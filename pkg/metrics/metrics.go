package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	namespace = "beachride"
	jobName   = "beachride"
)

var (
	fetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "fetch_latency",
			Subsystem: namespace,
			Help:      "Tide fetch latencies in seconds.",
			Buckets:   []float64{0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"source", "result"},
	)
	tides = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "tides_total",
			Subsystem: namespace,
			Help:      "Tide predictions seen at each stage of a run.",
		},
		[]string{"stage"},
	)
	runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "runs_total",
			Subsystem: namespace,
			Help:      "Completed and failed report runs.",
		},
		[]string{"result"},
	)
	lastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:      "last_success_timestamp_seconds",
			Subsystem: namespace,
			Help:      "Unix time of the last report that was sent.",
		},
	)
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: namespace,
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0},
		},
		[]string{"verb", "path", "code"},
	)
)

func init() {
	prometheus.MustRegister(
		fetchLatency,
		tides,
		runs,
		lastSuccess,
		requestLatency,
	)
}

// ObserveFetch records how long a fetch from source took and whether it
// failed.
func ObserveFetch(source string, latency time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	fetchLatency.With(prometheus.Labels{
		"source": source,
		"result": result,
	}).Observe(latency.Seconds())
}

// ObserveTides counts n predictions at a stage of the pipeline, e.g.
// "fetched", "low", or "good".
func ObserveTides(stage string, n int) {
	tides.WithLabelValues(stage).Add(float64(n))
}

// ObserveRun counts a run and, when it succeeded, stamps the success time.
func ObserveRun(err error) {
	if err != nil {
		runs.WithLabelValues("error").Inc()
		return
	}
	runs.WithLabelValues("ok").Inc()
	lastSuccess.SetToCurrentTime()
}

// Push sends everything registered to a Prometheus push gateway. Batch runs
// exit before they could be scraped.
func Push(gatewayURL string) error {
	return push.New(gatewayURL, jobName).
		Gatherer(prometheus.DefaultGatherer).
		Push()
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if r.URL != nil {
			path = r.URL.Path
		}
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, strconv.Itoa(rec.code), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}
