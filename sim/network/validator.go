package network

import "fmt"

// ValidationError reports a structural defect found by Validate. The
// message is human-readable and safe to surface directly to a caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// branchingKinds lists vertex kinds whose reachability search must try
// every outbound edge with an independent visited set. "spread" is a
// reserved node type (not implemented as a runnable node); the diagram
// builder rejects that shape, so only a Network assembled directly can
// hold such a vertex, and the walk still treats it as branching.
var branchingKinds = map[Kind]bool{
	KindDecision: true,
	Kind("spread"): true,
}

// Validate runs every structural check a well-formed network must pass.
// It returns the first violation found; callers that want every
// violation should fix one and re-run.
func Validate(n *Network) error {
	if len(n.Edges) == 0 {
		return validationErrorf("There are no edges.")
	}
	if len(n.Nodes) == 0 {
		return validationErrorf("There are no nodes.")
	}
	if len(n.ExitIDs) < 1 {
		return validationErrorf("No Exit.")
	}
	if len(n.SourceIDs) < 1 {
		return validationErrorf("No Source.")
	}

	for _, id := range n.SourceIDs {
		node := n.Nodes[id]
		if len(node.OutboundEdges) > 1 {
			return validationErrorf("Source %s has more than one outbound edge.", id)
		}
		if len(node.OutboundEdges) == 0 {
			return validationErrorf("Source %s has no outbound edge.", id)
		}
		if !SourceReachesExit(n, id) {
			return validationErrorf("Source %s has an outbound edge which doesn't lead to an Exit.", id)
		}
	}

	for _, id := range n.ExitIDs {
		if len(n.Nodes[id].OutboundEdges) > 0 {
			return validationErrorf("Exit %s has outbound edge(s).", id)
		}
	}

	for _, id := range n.ProcessIDs {
		count := len(n.Nodes[id].OutboundEdges)
		if count > 1 {
			return validationErrorf("Process %s has more than one outbound edge.", id)
		}
		if count == 0 {
			return validationErrorf("Process %s has no outbound edge.", id)
		}
	}

	for _, id := range n.DecisionIDs {
		if len(n.Nodes[id].OutboundEdges) == 0 {
			return validationErrorf("Decision %s has no outbound edges.", id)
		}
	}

	for _, e := range n.Edges {
		if _, ok := n.Nodes[e.From]; !ok {
			return validationErrorf("Edge %s references unknown source vertex %s.", e.ID, e.From)
		}
		if _, ok := n.Nodes[e.To]; !ok {
			return validationErrorf("Edge %s references unknown target vertex %s.", e.ID, e.To)
		}
	}

	return nil
}

// SourceReachesExit runs a depth-first reachability walk from id. At a
// branching vertex (Decision, or the reserved "spread" kind) each
// outbound edge is tried with its own copy of the visited set, so sibling
// subtrees never block each other and the search returns true as soon as
// any one of them finds an Exit. At a non-branching vertex the visited
// set is shared with the single recursive call — this asymmetry is
// deliberate: backtrack at branches, go straight through elsewhere,
// rather than cloning on every step.
func SourceReachesExit(n *Network, id string) bool {
	return searchForExit(n, id, map[string]bool{})
}

func searchForExit(n *Network, id string, seen map[string]bool) bool {
	node := n.Nodes[id]
	if node == nil {
		return false
	}
	if node.Kind == KindExit {
		return true
	}
	if seen[id] {
		return false // cycle, for this path only
	}
	seen[id] = true

	if branchingKinds[node.Kind] {
		for _, edgeID := range node.OutboundEdges {
			edge := n.Edges[edgeID]
			if edge == nil {
				continue
			}
			branchSeen := make(map[string]bool, len(seen))
			for k := range seen {
				branchSeen[k] = true
			}
			if searchForExit(n, edge.To, branchSeen) {
				return true
			}
		}
		return false
	}

	if len(node.OutboundEdges) == 0 {
		return false
	}
	edge := n.Edges[node.OutboundEdges[0]]
	if edge == nil {
		return false
	}
	return searchForExit(n, edge.To, seen)
}
