package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus metrics kept by a Handler.
type Metrics struct {
	handled  *prometheus.CounterVec
	rejected *prometheus.CounterVec
	dragged  prometheus.Counter
	// dropped counts drag cells that were out of range or touched twice.
	dropped     prometheus.Counter
	pageActions *prometheus.CounterVec
}

// NewMetrics creates the metrics of a Handler and registers them to the registerer passed. Nil may be passed
// to not register them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		handled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immersion",
			Name:      "messages_handled_total",
			Help:      "Messages from clients that were handled.",
		}, []string{"message"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immersion",
			Name:      "messages_rejected_total",
			Help:      "Messages from clients that were dropped as malformed or invalid.",
		}, []string{"message"}),
		dragged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "immersion",
			Name:      "dragged_items_total",
			Help:      "Items moved into crafting tables by dragging.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "immersion",
			Name:      "dropped_drag_cells_total",
			Help:      "Cells of drag commits that were out of range or repeated.",
		}),
		pageActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immersion",
			Name:      "page_actions_total",
			Help:      "Buttons pressed on the books of enchanting tables.",
		}, []string{"action"}),
	}
	if reg != nil {
		reg.MustRegister(m.handled, m.rejected, m.dragged, m.dropped, m.pageActions)
	}
	return m
}
