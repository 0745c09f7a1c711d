package depot

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
)

// location tracks where an entity lives. A nil archetype means the id is
// reserved but not yet materialized.
type location struct {
	arch *Archetype
	row  int
}

// Manager owns the entity id space and the entity → (archetype, row) mapping.
// It creates archetypes on demand, migrates entities between them when their
// composition changes, and keeps rows dense via swap-remove. Ids are monotonic
// and never recycled, so a stale handle can never alias a newer entity.
type Manager struct {
	nextID        EntityID
	locations     map[EntityID]location
	archetypes    map[mask.Mask]*Archetype
	ordered       []*Archetype
	nextArchID    archetypeID
	registry      *Registry
	onArchCreated func(*Archetype)
}

// newManager wires a manager to a registry. The hook fires once per newly
// created archetype; the query manager uses it to keep cached queries current.
func newManager(registry *Registry, onArchCreated func(*Archetype)) *Manager {
	return &Manager{
		locations:     make(map[EntityID]location),
		archetypes:    make(map[mask.Mask]*Archetype),
		nextArchID:    1,
		registry:      registry,
		onArchCreated: onArchCreated,
	}
}

// Registry returns the registry all of this manager's signatures derive from.
func (m *Manager) Registry() *Registry { return m.registry }

// Archetypes lists every archetype in creation order. The slice is shared; do
// not modify it.
func (m *Manager) Archetypes() []*Archetype { return m.ordered }

// Count reports how many ids are currently mapped, reserved ones included.
func (m *Manager) Count() int { return len(m.locations) }

// ReserveID hands out the next entity id without backing storage. The id is
// valid for same-batch referencing but must be materialized through
// AddReserved before component access.
func (m *Manager) ReserveID() EntityID {
	id := m.nextID
	m.nextID++
	m.locations[id] = location{arch: nil, row: -1}
	return id
}

// ReleaseID drops a reservation that was never materialized. Materialized and
// absent ids are left alone.
func (m *Manager) ReleaseID(id EntityID) {
	if loc, ok := m.locations[id]; ok && loc.arch == nil {
		delete(m.locations, id)
	}
}

// ArchetypeFor resolves the archetype for a composition, creating it (and
// notifying the creation hook) on first use. The composition is normalized
// through the registry, so order and duplicates never split archetypes.
func (m *Manager) ArchetypeFor(components []*ComponentType) *Archetype {
	sorted := m.registry.SortComponents(components)
	sig := m.registry.Signature(sorted)
	if arch, ok := m.archetypes[sig]; ok {
		return arch
	}
	arch := newArchetype(m.nextArchID, sig, sorted, Config.initialArchetypeCapacity)
	m.nextArchID++
	m.archetypes[sig] = arch
	m.ordered = append(m.ordered, arch)
	Config.logger.Debug().
		Uint32("archetype_id", arch.ID()).
		Int("components", len(sorted)).
		Msg("archetype created")
	if m.onArchCreated != nil {
		m.onArchCreated(arch)
	}
	return arch
}

// Add creates a fresh entity holding the given component values and returns
// its id.
func (m *Manager) Add(data ComponentMap) (EntityID, error) {
	return m.add(data, noEntity)
}

// AddReserved materializes a previously reserved id with the given component
// values.
func (m *Manager) AddReserved(id EntityID, data ComponentMap) error {
	_, err := m.add(data, id)
	return err
}

func (m *Manager) add(data ComponentMap, reserved EntityID) (EntityID, error) {
	for c, v := range data {
		if err := c.validate(v); err != nil {
			return noEntity, err
		}
	}

	id := reserved
	if id == noEntity {
		id = m.nextID
		m.nextID++
	} else {
		loc, ok := m.locations[id]
		if !ok {
			return noEntity, UnknownEntityError{ID: id}
		}
		if loc.arch != nil {
			return noEntity, NotPendingError{ID: id}
		}
	}

	components := make([]*ComponentType, 0, len(data))
	for c := range data {
		components = append(components, c)
	}
	arch := m.ArchetypeFor(components)
	row := arch.Allocate(id)
	for c, v := range data {
		if c.IsTag() {
			continue
		}
		if err := arch.setValue(row, c, v); err != nil {
			return noEntity, fmt.Errorf("failed to write component %s: %w", c.Name(), err)
		}
	}
	m.locations[id] = location{arch: arch, row: row}
	return id, nil
}

// Remove destroys an entity. A reserved-only id just loses its reservation;
// a materialized one vacates its row via swap-remove, with the moved entity's
// mapping fixed up.
func (m *Manager) Remove(id EntityID) error {
	loc, ok := m.locations[id]
	if !ok {
		return UnknownEntityError{ID: id}
	}
	delete(m.locations, id)
	if loc.arch == nil {
		return nil
	}
	return m.removeAndSwap(loc.arch, loc.row)
}

func (m *Manager) removeAndSwap(arch *Archetype, row int) error {
	moved, err := arch.RemoveEntity(row)
	if err != nil {
		return err
	}
	if moved != noEntity {
		m.locations[moved] = location{arch: arch, row: row}
	}
	return nil
}

// AddComponents attaches (or overwrites) component values on an entity,
// migrating it to the widened archetype when the composition grows. Values for
// components the entity already has are written in place.
func (m *Manager) AddComponents(id EntityID, data ComponentMap) error {
	loc, err := m.materialized(id)
	if err != nil {
		return err
	}
	for c, v := range data {
		if err := c.validate(v); err != nil {
			return err
		}
	}

	components := append([]*ComponentType(nil), loc.arch.components...)
	for c := range data {
		if !loc.arch.Contains(c) {
			components = append(components, c)
		}
	}
	dst := m.ArchetypeFor(components)

	if dst == loc.arch {
		for c, v := range data {
			if c.IsTag() {
				continue
			}
			if err := dst.setValue(loc.row, c, v); err != nil {
				return err
			}
		}
		return nil
	}

	newRow := dst.Allocate(id)
	loc.arch.copyRowInto(dst, newRow, loc.row)
	if err := m.removeAndSwap(loc.arch, loc.row); err != nil {
		return err
	}
	for c, v := range data {
		if c.IsTag() {
			continue
		}
		if err := dst.setValue(newRow, c, v); err != nil {
			return err
		}
	}
	m.locations[id] = location{arch: dst, row: newRow}
	return nil
}

// RemoveComponents detaches component types from an entity, migrating it to
// the narrowed archetype. Types the entity does not have are ignored; if
// nothing changes the call is a no-op.
func (m *Manager) RemoveComponents(id EntityID, components ...*ComponentType) error {
	loc, err := m.materialized(id)
	if err != nil {
		return err
	}

	drop := make(map[*ComponentType]struct{}, len(components))
	for _, c := range components {
		drop[c] = struct{}{}
	}
	kept := make([]*ComponentType, 0, len(loc.arch.components))
	for _, c := range loc.arch.components {
		if _, gone := drop[c]; !gone {
			kept = append(kept, c)
		}
	}
	dst := m.ArchetypeFor(kept)
	if dst == loc.arch {
		return nil
	}

	newRow := dst.Allocate(id)
	loc.arch.copyRowInto(dst, newRow, loc.row)
	if err := m.removeAndSwap(loc.arch, loc.row); err != nil {
		return err
	}
	m.locations[id] = location{arch: dst, row: newRow}
	return nil
}

// Get returns a live element view of one component row (length Stride()).
// Mutations through the view are immediately visible to queries.
func (m *Manager) Get(id EntityID, c *ComponentType) (any, error) {
	loc, err := m.materialized(id)
	if err != nil {
		return nil, err
	}
	col, ok := loc.arch.columns[c]
	if !ok {
		if loc.arch.Contains(c) {
			return nil, TagValueError{Component: c}
		}
		return nil, MissingComponentError{ID: id, Component: c}
	}
	return col.view(loc.row), nil
}

// Set writes one component value in place. Setting a component the entity does
// not yet have is equivalent to AddComponents with a single entry.
func (m *Manager) Set(id EntityID, c *ComponentType, v any) error {
	loc, err := m.materialized(id)
	if err != nil {
		return err
	}
	if err := c.validate(v); err != nil {
		return err
	}
	if !loc.arch.Contains(c) {
		return m.AddComponents(id, ComponentMap{c: v})
	}
	if c.IsTag() {
		return nil
	}
	return loc.arch.setValue(loc.row, c, v)
}

// Location reports the entity's current archetype and row. Row numbers are
// invalidated by any structural mutation.
func (m *Manager) Location(id EntityID) (*Archetype, int, error) {
	loc, err := m.materialized(id)
	if err != nil {
		return nil, -1, err
	}
	return loc.arch, loc.row, nil
}

func (m *Manager) materialized(id EntityID) (location, error) {
	loc, ok := m.locations[id]
	if !ok {
		return location{}, UnknownEntityError{ID: id}
	}
	if loc.arch == nil {
		return location{}, PendingEntityError{ID: id}
	}
	return loc, nil
}
