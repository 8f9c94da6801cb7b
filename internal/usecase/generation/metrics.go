package generation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "highlight_generations_total",
		Help: "Highlight generations by kind and result.",
	}, []string{"kind", "result"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "highlight_generation_duration_seconds",
		Help:    "Wall time of one highlight generation.",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
	}, []string{"kind"})
)
