// Package network holds the typed graph produced by the diagram builder:
// vertices (Source/Process/Decision/Exit), edges, and the shared Resource
// table. It is pure data — no scheduling, no randomness — so it can be
// built once, validated, and then handed to the engine unchanged for the
// lifetime of a run.
package network

// Kind identifies a vertex's behavior at runtime.
type Kind string

const (
	KindSource   Kind = "source"
	KindProcess  Kind = "process"
	KindDecision Kind = "decision"
	KindExit     Kind = "exit"
)

// ProcessType selects which of seize/delay/release a Process performs.
// Both "seize" and the original diagram format's misspelled "sieze" token
// are accepted by the builder and normalized to one of these values.
type ProcessType string

const (
	ProcessDelayOnly         ProcessType = "delay_only"
	ProcessSeizeOnly         ProcessType = "seize_only"
	ProcessReleaseOnly       ProcessType = "release_only"
	ProcessSeizeThenDelay    ProcessType = "seize_then_delay"
	ProcessSeizeDelayRelease ProcessType = "seize_delay_release"
)

// DelaySpec describes how to sample a duration. Args are kept as raw
// strings exactly as they arrive from the diagram; the engine's delay
// sampler parses them at sample time.
type DelaySpec struct {
	Type string
	Args map[string]string
}

// Node is a single vertex. Only the fields relevant to Kind are populated;
// the rest are zero values. This mirrors a tagged variant without a class
// hierarchy — see DESIGN.md for why.
type Node struct {
	ID   string
	Kind Kind

	// OutboundEdges holds edge ids in declaration order. Source and
	// Process require exactly one; Exit requires zero. A Decision uses two
	// (index 0 is "up", index 1 is "down"); Validate only rejects a
	// Decision that has none.
	OutboundEdges []string

	// Source
	Delay *DelaySpec

	// Process
	ProcessType     ProcessType
	WillSeize       bool
	WillDelay       bool
	WillRelease     bool
	SeizeResource   string // resource name, required when WillSeize
	ReleaseResource string // resource name, required when WillRelease

	// Decision
	Probability float64
}

// UpEdge returns the decision's "up" outbound edge id.
func (n *Node) UpEdge() string { return n.OutboundEdges[0] }

// DownEdge returns the decision's "down" outbound edge id.
func (n *Node) DownEdge() string { return n.OutboundEdges[1] }

// OutEdge returns the single outbound edge id of a Source or Process.
func (n *Node) OutEdge() string { return n.OutboundEdges[0] }

// Edge is a directed connection between two vertices. Edges carry no
// weight at runtime — Decision weights live on the Decision vertex.
type Edge struct {
	ID   string
	From string
	To   string
}

// Resource is a counted semaphore declaration. Capacity defaults to 1 if
// the diagram's count attribute was missing or unparseable.
type Resource struct {
	ID       string
	Name     string
	Capacity int
}

// Network is the fully parsed, build-time representation of a diagram.
type Network struct {
	Nodes     map[string]*Node
	Edges     map[string]*Edge
	Resources map[string]*Resource // keyed by declaration id

	// Declaration-order id lists, used by the validator and by Source
	// enumeration at run start.
	SourceIDs   []string
	ProcessIDs  []string
	DecisionIDs []string
	ExitIDs     []string
}

// NewNetwork returns an empty Network ready for the builder to populate.
func NewNetwork() *Network {
	return &Network{
		Nodes:     make(map[string]*Node),
		Edges:     make(map[string]*Edge),
		Resources: make(map[string]*Resource),
	}
}

// ResourceByName resolves a Process's resource reference. The builder
// keys Resource declarations by diagram id but Processes reference them by
// name; duplicate names take the last writer at build time (see
// AddResource), so this lookup is a simple linear scan over a small table.
func (n *Network) ResourceByName(name string) (*Resource, bool) {
	for _, r := range n.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// AddNode registers a vertex and indexes its id by kind.
func (n *Network) AddNode(node *Node) {
	n.Nodes[node.ID] = node
	switch node.Kind {
	case KindSource:
		n.SourceIDs = append(n.SourceIDs, node.ID)
	case KindProcess:
		n.ProcessIDs = append(n.ProcessIDs, node.ID)
	case KindDecision:
		n.DecisionIDs = append(n.DecisionIDs, node.ID)
	case KindExit:
		n.ExitIDs = append(n.ExitIDs, node.ID)
	}
}

// AddEdge registers an edge and appends it to its source vertex's
// outbound list in encounter order.
func (n *Network) AddEdge(edge *Edge) {
	n.Edges[edge.ID] = edge
	if from, ok := n.Nodes[edge.From]; ok {
		from.OutboundEdges = append(from.OutboundEdges, edge.ID)
	}
}

// AddResource registers a Resource declaration. Later calls with the same
// Name overwrite earlier ones in ResourceByName lookups — duplicate names
// take the last writer, per the builder's documented behavior.
func (n *Network) AddResource(r *Resource) {
	for id, existing := range n.Resources {
		if existing.Name == r.Name && id != r.ID {
			delete(n.Resources, id)
		}
	}
	n.Resources[r.ID] = r
}
