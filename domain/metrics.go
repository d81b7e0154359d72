package domain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for domain activity, registered on the default
// registry. Construction labels use the names of domain.go; the direction
// label distinguishes forward from inverse transforms (coset variants count
// through the transform they delegate to).
var (
	constructionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "polyfft",
			Subsystem: "domain",
			Name:      "constructions_total",
			Help:      "Number of evaluation domains constructed, by construction kind.",
		},
		[]string{"construction"},
	)

	transformsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "polyfft",
			Subsystem: "domain",
			Name:      "transforms_total",
			Help:      "Number of FFT operations executed, by construction kind and direction.",
		},
		[]string{"construction", "direction"},
	)
)

const (
	directionForward = "forward"
	directionInverse = "inverse"
)
