package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agency_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	OperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agency_operations_total",
			Help: "Total number of menu operations by outcome.",
		},
		[]string{"operation", "result"},
	)
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agency_operation_duration_seconds",
			Help:    "Duration of each menu operation, operator input included.",
			Buckets: []float64{0.1, 1, 5, 15, 60, 300},
		},
		[]string{"operation"},
	)
	DomainChangesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agency_domain_changes_total",
			Help: "Total number of candidates, vacancies and applications written.",
		},
		[]string{"change"},
	)
)

var (
	registry     = prometheus.NewRegistry()
	registerOnce sync.Once
)

func Register() {
	registerOnce.Do(func() {
		registry.MustRegister(ErrorsCounter)
		registry.MustRegister(OperationsCounter)
		registry.MustRegister(OperationDuration)
		registry.MustRegister(DomainChangesCounter)
	})
}

// WriteToTextfile dumps the collected metrics in the node_exporter textfile format.
// An empty path disables the dump.
func WriteToTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, registry)
}
