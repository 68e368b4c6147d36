package engine

import (
	"fmt"

	"github.com/flowsim/flowsim/sim/network"
	"github.com/sirupsen/logrus"
)

// Run drives a single execution of a validated Network from t=0 to
// Horizon. It owns the scheduler, the registry, the per-subsystem RNG,
// and the list of entities that departed through an Exit — everything
// the aggregator needs afterward.
//
// Node behavior is dispatched from handOff/runProcess/runDecision/runExit
// below rather than through a class hierarchy: Node.Kind plus a switch
// gives a tagged variant with a single dispatch entry point.
type Run struct {
	Scheduler *Scheduler
	Registry  *Registry
	RNG       *PartitionedRNG

	Departed    []*Entity
	ExitMembers map[string][]*Entity

	createdCounts map[string]int
}

// NewRun constructs a Run over reg, seeded from key, with the given
// horizon in virtual seconds.
func NewRun(reg *Registry, horizon int64, key SimulationKey) *Run {
	return &Run{
		Scheduler:     NewScheduler(horizon),
		Registry:      reg,
		RNG:           NewPartitionedRNG(key),
		ExitMembers:   make(map[string][]*Entity),
		createdCounts: make(map[string]int),
	}
}

// Start kicks off every Source's perpetual run loop at t=0, in network
// declaration order, then drains the scheduler until the horizon elapses.
func (r *Run) Start() {
	for _, id := range r.Registry.Network().SourceIDs {
		sourceID := id
		r.Scheduler.Kickoff(func(s *Scheduler) { r.emitFromSource(s, sourceID) })
	}
	r.Scheduler.Run()
}

// emitFromSource is the Source run loop: construct an entity, hand it
// off, then sample the inter-arrival delay and suspend. The hand-off
// precedes the wait, so the first entity is emitted at the instant this
// is first invoked (t=0, via Scheduler.Kickoff).
func (r *Run) emitFromSource(s *Scheduler, sourceID string) {
	node := r.Registry.Node(sourceID)
	count := r.createdCounts[sourceID]

	entity := NewEntity(fmt.Sprintf("%s-%d", sourceID, count))
	entity.CreatedAt = s.Now()
	entity.CreatedBy = sourceID

	logrus.Debugf("[t=%d] %s creates %s", s.Now(), sourceID, entity.ID)
	r.handOff(s, node.OutEdge(), entity)

	r.createdCounts[sourceID] = count + 1

	d := SampleDelay(node.Delay, r.RNG.ForSubsystem(SubsystemDelay))
	s.After(d, func(s *Scheduler) { r.emitFromSource(s, sourceID) })
}

// handOff transfers entity along edgeID to its target. Exit and Decision
// targets run synchronously in the caller's stack;
// anything else (Process) is scheduled as a new task at the current
// virtual time, preserving the invariant that non-suspending nodes
// complete within one logical step.
func (r *Run) handOff(s *Scheduler, edgeID string, entity *Entity) {
	edge := r.Registry.Edge(edgeID)
	target := r.Registry.Node(edge.To)

	switch target.Kind {
	case network.KindExit:
		r.runExit(s, target, entity)
	case network.KindDecision:
		r.runDecision(s, target, entity)
	default:
		s.At(s.Now(), func(s *Scheduler) { r.runProcess(s, target, entity) })
	}
}

// runProcess drives a single Process node. Seize and delay are the two
// suspension points; release and the final hand-off are synchronous.
//
// ArrivedAt for stay-duration purposes is captured inside
// delayThenFinish, i.e. when service actually begins, not when the
// entity first reaches the node: a Process that seizes may suspend for
// an arbitrary queueing wait first, and that wait must not be counted as
// time in service.
func (r *Run) runProcess(s *Scheduler, node *network.Node, entity *Entity) {
	entity.RecordVisit(node.ID)

	delayThenFinish := func(s *Scheduler) {
		arrivedAt := s.Now()
		finish := func(s *Scheduler) {
			if node.WillRelease {
				r.release(s, node, entity)
			}
			entity.RecordProcessVisit(node.ID, arrivedAt, s.Now())
			r.handOff(s, node.OutEdge(), entity)
		}
		if !node.WillDelay {
			finish(s)
			return
		}
		d := SampleDelay(node.Delay, r.RNG.ForSubsystem(SubsystemDelay))
		s.After(d, finish)
	}

	if !node.WillSeize {
		delayThenFinish(s)
		return
	}

	pool, ok := r.Registry.Resource(node.SeizeResource)
	if !ok {
		logrus.Warnf("process %s references undeclared resource %q; seize skipped", node.ID, node.SeizeResource)
		delayThenFinish(s)
		return
	}
	pool.Acquire(s, func(s *Scheduler, t *Ticket) {
		entity.Holdings[node.SeizeResource] = t
		delayThenFinish(s)
	})
}

// release is a no-op if the entity holds no ticket on the named resource,
// so a misconfigured release-without-seize can never deadlock the
// scheduler.
func (r *Run) release(s *Scheduler, node *network.Node, entity *Entity) {
	t, ok := entity.Holdings[node.ReleaseResource]
	if !ok {
		logrus.Warnf("process %s releases %q without a prior seize by %s; no-op", node.ID, node.ReleaseResource, entity.ID)
		return
	}
	pool, ok := r.Registry.Resource(node.ReleaseResource)
	if !ok {
		return
	}
	pool.Release(s, t)
	delete(entity.Holdings, node.ReleaseResource)
}

// runDecision draws u ~ Uniform[0,1) and takes "up" if u > p, else
// "down". No suspension.
func (r *Run) runDecision(s *Scheduler, node *network.Node, entity *Entity) {
	entity.RecordVisit(node.ID)
	u := r.RNG.ForSubsystem(SubsystemDecision).Float64()
	edge := node.DownEdge()
	if u > node.Probability {
		edge = node.UpEdge()
	}
	r.handOff(s, edge, entity)
}

// runExit records departure and appends to the Exit's departed list. No
// suspension and no further hand-off.
func (r *Run) runExit(s *Scheduler, node *network.Node, entity *Entity) {
	entity.Depart(node.ID, s.Now())
	if entity.HoldsOutstanding() {
		logrus.Warnf("entity %s reached exit %s still holding resources", entity.ID, node.ID)
	}
	r.Departed = append(r.Departed, entity)
	r.ExitMembers[node.ID] = append(r.ExitMembers[node.ID], entity)
}
