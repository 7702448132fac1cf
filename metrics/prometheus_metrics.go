package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/remiges-tech/logharbour/logharbour"
)

// PrometheusMetrics implements the Metrics interface using Prometheus as the backend.
// Metrics are registered on its own registry, so several instances can coexist in one process.
type PrometheusMetrics struct {
	mu            sync.RWMutex
	registry      *prometheus.Registry
	counters      map[string]prometheus.Counter
	counterVecs   map[string]*prometheus.CounterVec
	gauges        map[string]prometheus.Gauge
	gaugeVecs     map[string]*prometheus.GaugeVec
	histograms    map[string]prometheus.Histogram
	histogramVecs map[string]*prometheus.HistogramVec
	customBuckets map[string][]float64
	logger        *logharbour.Logger
}

// NewPrometheusMetrics creates a PrometheusMetrics that registers on registry.
// A nil registry gets a fresh one.
func NewPrometheusMetrics(registry *prometheus.Registry) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &PrometheusMetrics{
		registry:      registry,
		counters:      make(map[string]prometheus.Counter),
		counterVecs:   make(map[string]*prometheus.CounterVec),
		gauges:        make(map[string]prometheus.Gauge),
		gaugeVecs:     make(map[string]*prometheus.GaugeVec),
		histograms:    make(map[string]prometheus.Histogram),
		histogramVecs: make(map[string]*prometheus.HistogramVec),
		customBuckets: make(map[string][]float64),
	}
}

// WithLogger reports registration problems to l.
func (p *PrometheusMetrics) WithLogger(l *logharbour.Logger) *PrometheusMetrics {
	p.logger = l
	return p
}

// SetCustomBuckets sets the bucket thresholds used when the histogram 'name' is registered.
func (p *PrometheusMetrics) SetCustomBuckets(name string, buckets []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.customBuckets[name] = buckets
}

func (p *PrometheusMetrics) buckets(name string) []float64 {
	if b, ok := p.customBuckets[name]; ok {
		return b
	}
	return prometheus.DefBuckets
}

// register adds c to the registry. Registering the same metric twice is not an error.
func (p *PrometheusMetrics) register(name string, c prometheus.Collector) bool {
	if err := p.registry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			p.logError(err, "metric registration failed", name)
		}
		return false
	}
	return true
}

func (p *PrometheusMetrics) logError(err error, msg, name string) {
	if p.logger == nil {
		return
	}
	p.logger.WithModule("metrics").Error(err).LogActivity(msg, map[string]any{"metric": name})
}

// Register creates and registers a new metric of type 'Counter', 'Gauge' or 'Histogram'.
// Histograms use custom buckets if they have been set; otherwise the Prometheus defaults.
func (p *PrometheusMetrics) Register(name, metricType, help string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch metricType {
	case TypeCounter:
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
		if p.register(name, counter) {
			p.counters[name] = counter
		}
	case TypeGauge:
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
		if p.register(name, gauge) {
			p.gauges[name] = gauge
		}
	case TypeHistogram:
		histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: p.buckets(name),
		})
		if p.register(name, histogram) {
			p.histograms[name] = histogram
		}
	default:
		p.logError(errors.New("unknown metric type "+metricType), "metric registration failed", name)
	}
}

// Record updates a metric without labels: 'Add' for counters,
// 'Set' for gauges and 'Observe' for histograms. Unknown names are ignored.
func (p *PrometheusMetrics) Record(name string, value float64) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if counter, ok := p.counters[name]; ok {
		counter.Add(value)
		return
	}
	if gauge, ok := p.gauges[name]; ok {
		gauge.Set(value)
		return
	}
	if histogram, ok := p.histograms[name]; ok {
		histogram.Observe(value)
	}
}

// RegisterWithLabels creates and registers a new labeled metric (CounterVec, GaugeVec, HistogramVec).
func (p *PrometheusMetrics) RegisterWithLabels(name, metricType, help string, labels []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch metricType {
	case TypeCounter:
		counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
		if p.register(name, counterVec) {
			p.counterVecs[name] = counterVec
		}
	case TypeGauge:
		gaugeVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
		if p.register(name, gaugeVec) {
			p.gaugeVecs[name] = gaugeVec
		}
	case TypeHistogram:
		histogramVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: p.buckets(name),
		}, labels)
		if p.register(name, histogramVec) {
			p.histogramVecs[name] = histogramVec
		}
	default:
		p.logError(errors.New("unknown metric type "+metricType), "metric registration failed", name)
	}
}

// RecordWithLabels updates a labeled metric. The 'labelValues' must match the
// order and number of labels given at registration.
func (p *PrometheusMetrics) RecordWithLabels(name string, value float64, labelValues ...string) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if counterVec, ok := p.counterVecs[name]; ok {
		counterVec.WithLabelValues(labelValues...).Add(value)
		return
	}
	if gaugeVec, ok := p.gaugeVecs[name]; ok {
		gaugeVec.WithLabelValues(labelValues...).Set(value)
		return
	}
	if histogramVec, ok := p.histogramVecs[name]; ok {
		histogramVec.WithLabelValues(labelValues...).Observe(value)
	}
}

// Handler returns the scrape endpoint for this instance's registry.
func (p *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// StartMetricsServer serves /metrics on port until ctx is done.
func (p *PrometheusMetrics) StartMetricsServer(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())
	srv := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
