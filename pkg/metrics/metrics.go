// Package metrics holds the Prometheus collectors and the OpenTelemetry meter
// provider shared by the service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const namespace = "creditscore"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ExplorerRequestDuration observes block explorer API calls by provider and outcome.
	ExplorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer",
		Name:      "request_duration_seconds",
		Help:      "Duration of block explorer API requests.",
		Buckets:   DefaultBuckets,
	}, []string{"provider", "outcome"})

	// ContractReadDuration observes read-only contract calls by method and outcome.
	ContractReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "contract",
		Name:      "read_duration_seconds",
		Help:      "Duration of read-only contract calls.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "outcome"})

	// SyncedTransactions counts explorer transactions persisted by account syncs.
	SyncedTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "transactions_total",
		Help:      "Number of wallet transactions stored by account syncs.",
	})
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Outcome maps an error to an outcome label value.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}

	return OutcomeOK
}

// NewMeterProvider creates an OpenTelemetry meter provider exporting through
// the default Prometheus registerer. It must only be called once per process.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
