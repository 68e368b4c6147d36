package engine

import (
	"math/rand"
	"strconv"

	"github.com/flowsim/flowsim/sim/network"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"
)

// randSource adapts the engine's per-subsystem *rand.Rand stream to the
// Uint64-based source interface gonum's stat/distuv expects
// (math/rand/v2.Source). The interface requires only a
// Uint64() uint64 method, which *rand.Rand already implements, so no new
// import is needed to satisfy it structurally.
type randSource struct {
	r *rand.Rand
}

func (s randSource) Uint64() uint64 { return s.r.Uint64() }

// SampleDelay draws a non-negative duration from spec using rng. Numeric
// args are parsed from strings via integer conversion; an unparseable or
// missing arg is treated as 0. An unknown delay type is logged as a
// warning and yields 0.
//
// Continuous distributions (triangular, exponential) are drawn from
// gonum's stat/distuv rather than hand-rolled.
func SampleDelay(spec *network.DelaySpec, rng *rand.Rand) int64 {
	if spec == nil {
		return 0
	}
	args := spec.Args

	switch spec.Type {
	case "constant":
		return int64(intArg(args, "val"))

	case "uniform":
		lo, hi := intArg(args, "min"), intArg(args, "max")
		if hi < lo {
			lo, hi = hi, lo
		}
		return int64(lo + rng.Intn(hi-lo+1))

	case "triangular":
		lo, hi, mid := float64(intArg(args, "min")), float64(intArg(args, "max")), float64(intArg(args, "mid"))
		if hi <= lo {
			return int64(lo)
		}
		if mid < lo {
			mid = lo
		}
		if mid > hi {
			mid = hi
		}
		tri := distuv.NewTriangle(lo, hi, mid, randSource{rng})
		return int64(tri.Rand())

	case "exponential":
		rate := float64(intArg(args, "val"))
		if rate <= 0 {
			return 0
		}
		exp := distuv.Exponential{Rate: rate, Src: randSource{rng}}
		return int64(exp.Rand())

	default:
		logrus.Warnf("unknown delay type %q; using a delay of 0", spec.Type)
		return 0
	}
}

func intArg(args map[string]string, key string) int {
	v, ok := args[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
