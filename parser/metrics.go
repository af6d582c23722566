package parser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Extraction metrics, registered on the default Prometheus registry and
// exposed by the service's /metrics endpoint.
var (
	extractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nluentities_extractions_total",
		Help: "Number of Extract calls that reached an engine, per language.",
	}, []string{"language"})

	entitiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nluentities_entities_total",
		Help: "Number of builtin entities produced, per entity kind.",
	}, []string{"kind"})

	droppedMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nluentities_dropped_matches_total",
		Help: "Number of raw matches dropped because conversion failed, per declared kind.",
	}, []string{"kind"})
)
