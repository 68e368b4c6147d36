package engine

// Ticket is bound one-to-one to the request that obtained it and must
// only be released by the entity that acquired it; releasing any other
// entity's ticket is undefined behavior.
type Ticket struct {
	resource *ResourcePool
}

// ResourcePool is a counted semaphore with a FIFO wait queue: entities
// unable to seize immediately enqueue and are served strictly in arrival
// order as capacity frees up.
type ResourcePool struct {
	Name     string
	Capacity int

	inUse   int
	waiters []waiter
}

type waiter struct {
	resume func(s *Scheduler)
}

// NewResourcePool returns a pool with the given capacity. Capacity below
// 1 is clamped to 1, matching the builder's documented fallback.
func NewResourcePool(name string, capacity int) *ResourcePool {
	if capacity < 1 {
		capacity = 1
	}
	return &ResourcePool{Name: name, Capacity: capacity}
}

// InUse reports the current outstanding-holdings count. Always
// <= Capacity.
func (r *ResourcePool) InUse() int { return r.inUse }

// Acquire is the resource-acquisition suspension point. If a unit is
// free, it is granted immediately and cont runs synchronously in the
// caller's stack — no suspension actually occurs, since the request
// becomes ready once the in-use count is below capacity at the moment of
// scheduling. Otherwise the request queues FIFO and cont runs later, once
// Release schedules it.
func (r *ResourcePool) Acquire(s *Scheduler, cont func(s *Scheduler, t *Ticket)) {
	if r.inUse < r.Capacity {
		r.inUse++
		cont(s, &Ticket{resource: r})
		return
	}
	r.waiters = append(r.waiters, waiter{resume: func(s *Scheduler) {
		r.inUse++
		cont(s, &Ticket{resource: r})
	}})
}

// Release returns one unit. If a waiter is queued, the head of the queue
// becomes ready on the next scheduling step at the current virtual time —
// scheduled via Scheduler.At rather than invoked in place, so it is
// ordered correctly against any other event already pending for this
// instant.
func (r *ResourcePool) Release(s *Scheduler, t *Ticket) {
	if t == nil || t.resource != r {
		return
	}
	r.inUse--
	if len(r.waiters) == 0 {
		return
	}
	head := r.waiters[0]
	r.waiters = r.waiters[1:]
	s.At(s.Now(), head.resume)
}
