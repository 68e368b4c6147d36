package engine

// ProcessVisit records one Process's dwell time for a single entity.
type ProcessVisit struct {
	NodeID     string
	ArrivedAt  int64
	DepartedAt int64
}

// Entity is the token flowing through the network. Visit history is kept
// as ordered records per event; Holdings tracks outstanding resource
// tickets so a Process that releases can find what this entity is
// holding. Entities never reference Resources directly and Resources
// never reference Entities — no reference cycles.
type Entity struct {
	ID string

	CreatedAt int64
	CreatedBy string

	DepartedAt      int64
	DepartedThrough string
	Departed        bool

	Visited       []string
	ProcessVisits []ProcessVisit

	Holdings map[string]*Ticket // resource name -> outstanding ticket
}

// NewEntity constructs an entity with the given id; CreatedAt/CreatedBy
// are set by the Source that emits it.
func NewEntity(id string) *Entity {
	return &Entity{ID: id, Holdings: make(map[string]*Ticket)}
}

// RecordVisit appends node id to the entity's visited list.
func (e *Entity) RecordVisit(nodeID string) {
	e.Visited = append(e.Visited, nodeID)
}

// RecordProcessVisit appends a dwell-time record for a Process.
func (e *Entity) RecordProcessVisit(nodeID string, arrivedAt, departedAt int64) {
	e.ProcessVisits = append(e.ProcessVisits, ProcessVisit{NodeID: nodeID, ArrivedAt: arrivedAt, DepartedAt: departedAt})
}

// Depart marks the entity as having left through exitID at time t.
func (e *Entity) Depart(exitID string, t int64) {
	e.DepartedThrough = exitID
	e.DepartedAt = t
	e.Departed = true
}

// Lifespan returns DepartedAt - CreatedAt. Only meaningful once Departed
// is true.
func (e *Entity) Lifespan() int64 { return e.DepartedAt - e.CreatedAt }

// HoldsOutstanding reports whether the entity still carries any resource
// ticket — used to flag (non-fatally) the best-effort invariant that
// Holdings should be empty on Exit.
func (e *Entity) HoldsOutstanding() bool { return len(e.Holdings) > 0 }
