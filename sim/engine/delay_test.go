package engine_test

import (
	"math/rand"
	"testing"

	"github.com/flowsim/flowsim/sim/engine"
	"github.com/flowsim/flowsim/sim/network"
	"github.com/stretchr/testify/assert"
)

func TestSampleDelay_Constant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spec := &network.DelaySpec{Type: "constant", Args: map[string]string{"val": "7"}}
	assert.Equal(t, int64(7), engine.SampleDelay(spec, rng))
}

func TestSampleDelay_UniformWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spec := &network.DelaySpec{Type: "uniform", Args: map[string]string{"min": "2", "max": "5"}}
	for i := 0; i < 50; i++ {
		d := engine.SampleDelay(spec, rng)
		assert.GreaterOrEqual(t, d, int64(2))
		assert.LessOrEqual(t, d, int64(5))
	}
}

func TestSampleDelay_TriangularWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spec := &network.DelaySpec{Type: "triangular", Args: map[string]string{"min": "0", "max": "10", "mid": "3"}}
	for i := 0; i < 50; i++ {
		d := engine.SampleDelay(spec, rng)
		assert.GreaterOrEqual(t, d, int64(0))
		assert.LessOrEqual(t, d, int64(10))
	}
}

func TestSampleDelay_ExponentialIsNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spec := &network.DelaySpec{Type: "exponential", Args: map[string]string{"val": "2"}}
	for i := 0; i < 50; i++ {
		d := engine.SampleDelay(spec, rng)
		assert.GreaterOrEqual(t, d, int64(0))
	}
}

func TestSampleDelay_UnknownTypeYieldsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spec := &network.DelaySpec{Type: "gaussian", Args: map[string]string{"val": "2"}}
	assert.Equal(t, int64(0), engine.SampleDelay(spec, rng))
}

func TestSampleDelay_NilSpecYieldsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, int64(0), engine.SampleDelay(nil, rng))
}
