package depot

// World is the composition root: it owns the registry, entity manager, query
// manager, and command buffer, and is the surface an orchestrator talks to.
//
// The registry is created once with the world and must never be swapped out;
// every archetype signature derives from it.
//
// World enforces a phase discipline, not a lock: while Locked (typically for
// the duration of a per-entity processing pass), direct structural mutators
// fail with LockedWorldError and changes must be routed through Buffer(),
// then flushed between passes. The model stays single-threaded throughout;
// nothing here is safe for concurrent use.
type World struct {
	registry  *Registry
	entities  *Manager
	queries   *QueryManager
	buffer    *CommandBuffer
	resources *Resources
	locked    bool
}

func newWorld() *World {
	registry := newRegistry()
	queries := newQueryManager(registry)
	entities := newManager(registry, queries.OnArchCreated)
	return &World{
		registry:  registry,
		entities:  entities,
		queries:   queries,
		buffer:    newCommandBuffer(entities),
		resources: newResources(),
	}
}

func (w *World) Registry() *Registry { return w.registry }

// Entities exposes the underlying entity manager for advanced use. Prefer the
// World methods, which respect the phase discipline.
func (w *World) Entities() *Manager { return w.entities }

// Buffer is the deferred mutation log for the locked phase.
func (w *World) Buffer() *CommandBuffer { return w.buffer }

// Resources is the store for world-global state outside the entity tables.
func (w *World) Resources() *Resources { return w.resources }

func (w *World) Locked() bool { return w.locked }

// Lock enters the protected phase: direct structural mutation is rejected
// until Unlock.
func (w *World) Lock() { w.locked = true }

// Unlock leaves the protected phase. It does not flush; the orchestrator
// decides when buffered commands replay (normally right after unlocking).
func (w *World) Unlock() { w.locked = false }

// ReserveID allocates an entity id with no backing row yet.
func (w *World) ReserveID() EntityID { return w.entities.ReserveID() }

// CreateEntity makes a new entity from the given component values.
func (w *World) CreateEntity(data ComponentMap) (EntityID, error) {
	if w.locked {
		return noEntity, LockedWorldError{}
	}
	return w.entities.Add(data)
}

// RemoveEntity destroys an entity and frees its row.
func (w *World) RemoveEntity(id EntityID) error {
	if w.locked {
		return LockedWorldError{}
	}
	return w.entities.Remove(id)
}

// AddComponents attaches component values to an entity.
func (w *World) AddComponents(id EntityID, data ComponentMap) error {
	if w.locked {
		return LockedWorldError{}
	}
	return w.entities.AddComponents(id, data)
}

// RemoveComponents detaches component types from an entity.
func (w *World) RemoveComponents(id EntityID, components ...*ComponentType) error {
	if w.locked {
		return LockedWorldError{}
	}
	return w.entities.RemoveComponents(id, components...)
}

// GetComponent returns a live view of one component row.
func (w *World) GetComponent(id EntityID, c *ComponentType) (any, error) {
	return w.entities.Get(id, c)
}

// SetComponent writes one component value, attaching the component first if
// the entity lacks it.
func (w *World) SetComponent(id EntityID, c *ComponentType, v any) error {
	return w.entities.Set(id, c, v)
}

// Query returns the cached query for the composition pair, backfilling a
// newly created one against all existing archetypes so it is immediately
// complete.
func (w *World) Query(include []*ComponentType, exclude ...*ComponentType) *Query {
	q, isNew := w.queries.GetQuery(include, exclude)
	if isNew {
		for _, arch := range w.entities.Archetypes() {
			q.TryAdd(arch)
		}
	}
	return q
}

// Flush replays the buffered structural commands. Call between passes, never
// while iterating query results.
func (w *World) Flush() error {
	return w.buffer.Flush()
}

// Clear discards the buffered commands without applying them, releasing any
// pending reservations.
func (w *World) Clear() {
	w.buffer.Clear()
}
