package engine

import "github.com/flowsim/flowsim/sim/network"

// Registry is the per-run, immutable-after-build lookup table handed to
// every node behavior: the typed network plus one live ResourcePool per
// declared Resource, scoped to a per-run context object and passed
// explicitly. Nothing here is package-level mutable state, so two runs
// over the same Network never share a ResourcePool.
type Registry struct {
	net       *network.Network
	resources map[string]*ResourcePool // keyed by resource name
}

// NewRegistry builds a Registry from a validated Network, instantiating
// one ResourcePool per declared Resource at run start from the parsed
// resource table.
func NewRegistry(net *network.Network) *Registry {
	resources := make(map[string]*ResourcePool, len(net.Resources))
	for _, r := range net.Resources {
		resources[r.Name] = NewResourcePool(r.Name, r.Capacity)
	}
	return &Registry{net: net, resources: resources}
}

// Node looks up a vertex by id. Returns nil if absent — callers in this
// package only ever look up ids taken from edges in an already-validated
// network, so a miss indicates a validator gap, not a normal runtime case.
func (g *Registry) Node(id string) *network.Node { return g.net.Nodes[id] }

// Edge looks up an edge by id.
func (g *Registry) Edge(id string) *network.Edge { return g.net.Edges[id] }

// Resource looks up the live pool backing a Process's named resource
// reference. The second return value is false if no Resource with that
// name was declared.
func (g *Registry) Resource(name string) (*ResourcePool, bool) {
	r, ok := g.resources[name]
	return r, ok
}

// Network exposes the underlying typed network, e.g. for Source
// enumeration at run start.
func (g *Registry) Network() *network.Network { return g.net }
