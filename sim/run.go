package sim

import (
	"github.com/flowsim/flowsim/sim/diagram"
	"github.com/flowsim/flowsim/sim/engine"
	"github.com/flowsim/flowsim/sim/network"
	"github.com/flowsim/flowsim/sim/stats"
)

// Simulate builds, validates, and runs the diagram described by xmlBytes
// under cfg, returning the aggregated statistics report. Build and
// validation errors (diagram.BuildError, *network.ValidationError) are
// returned unwrapped and are always fatal for the run: they never produce
// a partial statistics document.
func Simulate(xmlBytes []byte, cfg RunConfig) (*stats.Report, error) {
	net, err := diagram.Build(xmlBytes)
	if err != nil {
		return nil, err
	}

	if err := network.Validate(net); err != nil {
		return nil, err
	}

	registry := engine.NewRegistry(net)
	run := engine.NewRun(registry, cfg.Horizon(), cfg.SimulationKey())
	run.Start()

	return stats.Aggregate(run), nil
}
