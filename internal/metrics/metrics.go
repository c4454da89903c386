package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

var (
	selectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deckhand",
		Name:      "selections_total",
		Help:      "Slide selections computed, by variant and entry point.",
	}, []string{"variant", "source"})

	selectionSlides = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "deckhand",
		Name:      "selection_slides",
		Help:      "Number of slides per selection.",
		Buckets:   []float64{9, 15, 20, 30, 45, 60, 90, 120},
	}, []string{"variant"})

	tacticDetections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deckhand",
		Name:      "tactic_detections_total",
		Help:      "Tactics detected across selections.",
	}, []string{"tactic"})

	rejectedInputs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deckhand",
		Name:      "rejected_inputs_total",
		Help:      "Payloads rejected before selection, by entry point.",
	}, []string{"source"})
)

// ObserveSelection records one completed selection.
func ObserveSelection(variant, source string, slides int, detected []tactics.Tactic) {
	selectionsTotal.WithLabelValues(variant, source).Inc()
	selectionSlides.WithLabelValues(variant).Observe(float64(slides))
	for _, t := range detected {
		tacticDetections.WithLabelValues(string(t)).Inc()
	}
}

// ObserveRejected records a payload that failed structural validation.
func ObserveRejected(source string) {
	rejectedInputs.WithLabelValues(source).Inc()
}
