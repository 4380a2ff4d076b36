// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_questions_total",
			Help: "Questions answered by category and reply source",
		},
		[]string{"category", "source"},
	)

	uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_uploads_total",
			Help: "Dataset uploads by outcome",
		},
		[]string{"outcome"},
	)

	registerOnce sync.Once
)

// Init registers the collectors. Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(questionsTotal, uploadsTotal)
	})
}

// RecordQuestion counts one answered question.
func RecordQuestion(category, source string) {
	questionsTotal.WithLabelValues(category, source).Inc()
}

// RecordUpload counts one dataset upload attempt.
func RecordUpload(outcome string) {
	uploadsTotal.WithLabelValues(outcome).Inc()
}
