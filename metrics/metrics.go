// Package metrics provides an abstract interface for recording the
// service's counters, gauges and histograms, plus the conversion metrics
// every nepaliword deployment exposes.
//
// Usage Example:
//
//	m := metrics.NewPrometheusMetrics(prometheus.NewRegistry())
//	metrics.RegisterConversionMetrics(m)
//	m.RecordWithLabels(metrics.ConversionsTotal, 1, metrics.OutcomeSuccess)
package metrics

type Metrics interface {
	Register(name, metricType, help string)
	Record(name string, value float64)
	RegisterWithLabels(name, metricType, help string, labels []string)
	RecordWithLabels(name string, value float64, labelValues ...string)
}

// Metric types understood by Register and RegisterWithLabels.
const (
	TypeCounter   = "Counter"
	TypeGauge     = "Gauge"
	TypeHistogram = "Histogram"
)

// Conversion metric names.
const (
	ConversionsTotal   = "nepaliword_conversions_total"
	ConversionDuration = "nepaliword_conversion_duration_seconds"
	CacheLookupsTotal  = "nepaliword_cache_hits_total"
)

// Label values of ConversionsTotal and CacheLookupsTotal.
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeMagnitude = "unsupported_magnitude"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// conversionBuckets spans a few microseconds to a few milliseconds.
var conversionBuckets = []float64{.00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005}

// RegisterConversionMetrics registers the conversion counters and histogram on m.
func RegisterConversionMetrics(m Metrics) {
	if p, ok := m.(*PrometheusMetrics); ok {
		p.SetCustomBuckets(ConversionDuration, conversionBuckets)
	}
	m.RegisterWithLabels(ConversionsTotal, TypeCounter, "Amounts converted to Nepali words, by outcome", []string{"outcome"})
	m.Register(ConversionDuration, TypeHistogram, "Time spent converting one amount")
	m.RegisterWithLabels(CacheLookupsTotal, TypeCounter, "Conversion cache lookups, by result", []string{"result"})
}

// Noop discards everything recorded on it.
type Noop struct{}

func (Noop) Register(string, string, string)                     {}
func (Noop) Record(string, float64)                              {}
func (Noop) RegisterWithLabels(string, string, string, []string) {}
func (Noop) RecordWithLabels(string, float64, ...string)         {}
