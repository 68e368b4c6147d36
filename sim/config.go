package sim

import "github.com/flowsim/flowsim/sim/engine"

// RunConfig groups the knobs a single simulation run needs beyond the
// network itself, in small config-struct style.
type RunConfig struct {
	// Days and HoursPerDay compute the horizon: Days * HoursPerDay * 3600
	// virtual seconds. NewRunConfig defaults them to 1 and 8 respectively
	// when zero; Horizon uses them as they are.
	Days        int
	HoursPerDay int

	// Seed is the master PRNG seed. When HasSeed is false,
	// engine.DefaultSeed is used, so the seed is fixed for reproducibility
	// in tests when omitted.
	Seed    int64
	HasSeed bool
}

// NewRunConfig returns a RunConfig with days/hoursPerDay defaulted to
// 1 x 8 when either is zero.
func NewRunConfig(days, hoursPerDay int, seed int64, hasSeed bool) RunConfig {
	if days == 0 {
		days = 1
	}
	if hoursPerDay == 0 {
		hoursPerDay = 8
	}
	return RunConfig{Days: days, HoursPerDay: hoursPerDay, Seed: seed, HasSeed: hasSeed}
}

// Horizon returns the simulation_duration in virtual seconds.
func (c RunConfig) Horizon() int64 {
	return int64(c.Days) * int64(c.HoursPerDay) * 3600
}

// SimulationKey resolves the configured seed, falling back to
// engine.DefaultSeed when none was supplied.
func (c RunConfig) SimulationKey() engine.SimulationKey {
	if !c.HasSeed {
		return engine.NewSimulationKey(engine.DefaultSeed)
	}
	return engine.NewSimulationKey(c.Seed)
}
