package highlight

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeDispatched = "dispatched"
	outcomeExisting   = "existing"
	outcomeSkipped    = "skipped"
	outcomeFailed     = "failed"
)

var dispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "highlight_dispatches_total",
	Help: "Highlight generation requests by kind and outcome.",
}, []string{"kind", "outcome"})
