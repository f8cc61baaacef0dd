package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Shell-level counters. Section transitions come from every entry point
// (clicks, history navigation, restores); materialization failures count
// producer errors caught by the content boundary.
var (
	SectionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldsuite_shell_section_transitions_total",
		Help: "Active-section changes by section id.",
	}, []string{"section"})

	MaterializationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldsuite_shell_materialization_failures_total",
		Help: "Section view materialization failures by section id.",
	}, []string{"section"})

	GateDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldsuite_shell_gate_decisions_total",
		Help: "Access gate outcomes by state.",
	}, []string{"state"})
)
