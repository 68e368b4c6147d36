// Package stats reduces a finished run's departed entities into the
// final statistics response document: a small struct accumulating
// counters across a run, emitted verbatim rather than further summarized.
package stats

import "github.com/flowsim/flowsim/sim/engine"

// NodeStats holds one vertex's aggregated statistics.
type NodeStats struct {
	VisitedCount  int     `json:"visited_count"`
	StayDurations []int64 `json:"stay_durations,omitempty"`
}

// EntityStats holds the aggregated per-entity statistics.
type EntityStats struct {
	Lifespans []int64 `json:"lifespans"`
}

// Report is the full statistics response document.
type Report struct {
	Nodes    map[string]*NodeStats `json:"nodes"`
	Entities EntityStats           `json:"entities"`
}

// Aggregate reduces run's departed entities into a Report:
//   - nodes[id].visited_count is incremented once per entity for each of
//     created_by, departed_through, and every id in the entity's visited
//     list;
//   - nodes[process_id].stay_durations collects departed_at - arrived_at
//     for every process visit;
//   - entities.lifespans collects departed_at - created_at for every
//     departed entity.
//
// Entities still in flight when the horizon elapsed are not in
// run.Departed and so never contribute here — their partial statistics
// are discarded.
func Aggregate(run *engine.Run) *Report {
	report := &Report{Nodes: make(map[string]*NodeStats)}

	visit := func(nodeID string) {
		n, ok := report.Nodes[nodeID]
		if !ok {
			n = &NodeStats{}
			report.Nodes[nodeID] = n
		}
		n.VisitedCount++
	}

	for _, e := range run.Departed {
		visit(e.CreatedBy)
		visit(e.DepartedThrough)
		for _, nodeID := range e.Visited {
			visit(nodeID)
		}

		for _, pv := range e.ProcessVisits {
			n, ok := report.Nodes[pv.NodeID]
			if !ok {
				n = &NodeStats{}
				report.Nodes[pv.NodeID] = n
			}
			n.StayDurations = append(n.StayDurations, pv.DepartedAt-pv.ArrivedAt)
		}

		report.Entities.Lifespans = append(report.Entities.Lifespans, e.Lifespan())
	}

	return report
}
