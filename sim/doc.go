// Package sim is the top-level entry point for building, validating, and
// running a diagram-described entity-flow simulation.
//
// # Reading Guide
//
// Start with these to understand the whole pipeline:
//   - config.go: RunConfig (seed, horizon) and how a horizon is computed
//   - run.go: Simulate, the function that wires the four stages below
//     together: diagram.Build -> network.Validate -> engine.Run -> stats.Aggregate
//
// # Architecture
//
// sim itself holds only orchestration; the real work lives in
// subpackages:
//   - sim/diagram/: mxGraph-style XML decoding and network construction
//   - sim/network/: the typed graph (Node/Edge/Resource) and its validator
//   - sim/engine/: the virtual-time scheduler, Resource pool, Entity
//     lifecycle, and the four node behaviors
//   - sim/stats/: per-run statistics reduction
//
// api/ at the repository root gives the submit/deliver boundary of a
// hosted simulation service as Go interfaces; cmd/ is the CLI that calls
// Simulate directly, standing in for that boundary's "worker" side during
// development and testing.
package sim
