package network_test

import (
	"testing"

	"github.com/flowsim/flowsim/sim/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceExitNetwork() *network.Network {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	n.AddNode(&network.Node{ID: "exit", Kind: network.KindExit})
	n.AddEdge(&network.Edge{ID: "e1", From: "src", To: "exit"})
	return n
}

func TestValidate_AcceptsSourceExit(t *testing.T) {
	require.NoError(t, network.Validate(sourceExitNetwork()))
}

func TestValidate_RejectsEmptyEdges(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no edges")
}

func TestValidate_RejectsEmptyNodes(t *testing.T) {
	err := network.Validate(network.NewNetwork())
	require.Error(t, err)
}

func TestValidate_RejectsNoSource(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "exit", Kind: network.KindExit})
	n.AddEdge(&network.Edge{ID: "e1", From: "exit", To: "exit"})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No Source")
}

func TestValidate_RejectsNoExit(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	n.AddEdge(&network.Edge{ID: "e1", From: "src", To: "src"})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No Exit")
}

func TestValidate_RejectsSourceWithTwoOutboundEdges(t *testing.T) {
	n := sourceExitNetwork()
	n.AddNode(&network.Node{ID: "exit2", Kind: network.KindExit})
	n.AddEdge(&network.Edge{ID: "e2", From: "src", To: "exit2"})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one outbound edge")
}

func TestValidate_RejectsExitWithOutboundEdge(t *testing.T) {
	n := sourceExitNetwork()
	n.AddEdge(&network.Edge{ID: "e2", From: "exit", To: "src"})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbound edge")
}

func TestValidate_RejectsProcessWithNoOutboundEdge(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	n.AddNode(&network.Node{ID: "p", Kind: network.KindProcess})
	n.AddNode(&network.Node{ID: "exit", Kind: network.KindExit})
	n.AddEdge(&network.Edge{ID: "e1", From: "src", To: "p"})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Process p has no outbound edge")
}

func TestValidate_RejectsDecisionWithNoOutboundEdges(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	n.AddNode(&network.Node{ID: "d", Kind: network.KindDecision})
	n.AddEdge(&network.Edge{ID: "e1", From: "src", To: "d"})
	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Decision d has no outbound edges")
}

// TestValidate_RejectsUnreachableExit covers a Source whose only path
// leads to a Process with a self-loop, so it never reaches an Exit.
func TestValidate_RejectsUnreachableExit(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	n.AddNode(&network.Node{ID: "p", Kind: network.KindProcess})
	n.AddNode(&network.Node{ID: "exit", Kind: network.KindExit}) // unreachable
	n.AddEdge(&network.Edge{ID: "e1", From: "src", To: "p"})
	n.AddEdge(&network.Edge{ID: "e2", From: "p", To: "p"}) // self-loop, no way out

	err := network.Validate(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doesn't lead to an Exit")
}

// TestSourceReachesExit_BranchingSiblingsDontBlockEachOther verifies the
// per-branch visited-set copy: one branch cycling back on itself must not
// prevent its sibling branch from reaching an Exit.
func TestSourceReachesExit_BranchingSiblingsDontBlockEachOther(t *testing.T) {
	n := network.NewNetwork()
	n.AddNode(&network.Node{ID: "src", Kind: network.KindSource})
	n.AddNode(&network.Node{ID: "d", Kind: network.KindDecision})
	n.AddNode(&network.Node{ID: "deadend", Kind: network.KindProcess})
	n.AddNode(&network.Node{ID: "exit", Kind: network.KindExit})
	n.AddEdge(&network.Edge{ID: "e1", From: "src", To: "d"})
	n.AddEdge(&network.Edge{ID: "up", From: "d", To: "deadend"})
	n.AddEdge(&network.Edge{ID: "loop", From: "deadend", To: "deadend"})
	n.AddEdge(&network.Edge{ID: "down", From: "d", To: "exit"})

	assert.True(t, network.SourceReachesExit(n, "src"))
}
