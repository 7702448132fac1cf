package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWithLabels(t *testing.T) {
	metrics := NewPrometheusMetrics(nil)

	metrics.RegisterWithLabels("test_metric1", TypeCounter, "Test metric with labels", []string{"label1", "label2"})

	_, ok := metrics.counterVecs["test_metric1"]
	assert.True(t, ok, "Metric 'test_metric1' was not registered")
}

func TestRecordWithLabels(t *testing.T) {
	metrics := NewPrometheusMetrics(nil)

	metrics.RegisterWithLabels("test_metric2", TypeCounter, "Test metric with labels", []string{"label1", "label2"})
	metrics.RecordWithLabels("test_metric2", 1.0, "value1", "value2")
	metrics.RecordWithLabels("test_metric2", 2.0, "value1", "value2")

	got := testutil.ToFloat64(metrics.counterVecs["test_metric2"].WithLabelValues("value1", "value2"))
	assert.Equal(t, 3.0, got)
}

func TestRegisterAndRecord(t *testing.T) {
	metrics := NewPrometheusMetrics(nil)

	metrics.Register("test_counter", TypeCounter, "counter")
	metrics.Register("test_gauge", TypeGauge, "gauge")
	metrics.Register("test_histogram", TypeHistogram, "histogram")
	metrics.Register("test_unknown", "Summary", "unsupported")

	metrics.Record("test_counter", 2)
	metrics.Record("test_gauge", 7)
	metrics.Record("test_histogram", 0.5)
	metrics.Record("not_registered", 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.counters["test_counter"]))
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.gauges["test_gauge"]))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.histograms["test_histogram"]))
	assert.NotContains(t, metrics.counters, "test_unknown")
}

func TestRegisterTwiceKeepsFirst(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.Register("dup_total", TypeCounter, "dup")
	first := metrics.counters["dup_total"]
	metrics.Register("dup_total", TypeCounter, "dup")

	assert.Same(t, first, metrics.counters["dup_total"])
}

func TestConversionMetricsHandler(t *testing.T) {
	metrics := NewPrometheusMetrics(nil)
	RegisterConversionMetrics(metrics)

	metrics.RecordWithLabels(ConversionsTotal, 1, OutcomeSuccess)
	metrics.Record(ConversionDuration, 0.0001)
	metrics.RecordWithLabels(CacheLookupsTotal, 1, CacheMiss)

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `nepaliword_conversions_total{outcome="success"} 1`)
	assert.Contains(t, body, `nepaliword_cache_hits_total{result="miss"} 1`)
	assert.Contains(t, body, "nepaliword_conversion_duration_seconds_count 1")
}

func TestNoop(t *testing.T) {
	var m Metrics = Noop{}
	RegisterConversionMetrics(m)
	m.RecordWithLabels(ConversionsTotal, 1, OutcomeSuccess)
}
