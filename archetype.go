package depot

import (
	"slices"

	"github.com/TheBitDrifter/mask"
)

type archetypeID uint32

// EntityID identifies an entity. Ids are assigned monotonically and never
// reused; noEntity (-1) marks unoccupied archetype rows.
type EntityID int

const noEntity EntityID = -1

// Archetype is a dense columnar table holding every entity with one exact
// component composition. Rows [0, length) are occupied and contiguous; rows at
// or past length hold the sentinel id and undefined data. Row numbers are not
// stable across removals; any cached row must be re-resolved after a
// structural change.
type Archetype struct {
	id         archetypeID
	signature  mask.Mask
	components []*ComponentType
	columns    map[*ComponentType]column
	entities   []EntityID
	length     int
}

// newArchetype builds an empty table for the given normalized composition.
// Tags contribute to the signature but get no column.
func newArchetype(id archetypeID, signature mask.Mask, components []*ComponentType, capacity int) *Archetype {
	if capacity < 1 {
		capacity = 1
	}
	columns := make(map[*ComponentType]column, len(components))
	for _, c := range components {
		if c.IsTag() {
			continue
		}
		columns[c] = newColumn(c, capacity)
	}
	entities := make([]EntityID, capacity)
	for i := range entities {
		entities[i] = noEntity
	}
	return &Archetype{
		id:         id,
		signature:  signature,
		components: components,
		columns:    columns,
		entities:   entities,
	}
}

func (a *Archetype) ID() uint32 { return uint32(a.id) }

func (a *Archetype) Signature() mask.Mask { return a.signature }

// Components lists the composition in bit order. The slice is shared; do not
// modify it.
func (a *Archetype) Components() []*ComponentType { return a.components }

func (a *Archetype) Len() int { return a.length }

func (a *Archetype) Capacity() int { return len(a.entities) }

func (a *Archetype) Contains(c *ComponentType) bool {
	return slices.Contains(a.components, c)
}

// Entities returns a live view of the occupied row → entity id mapping,
// truncated to Len().
func (a *Archetype) Entities() []EntityID {
	return a.entities[:a.length:a.length]
}

// Data returns a live element view of the component's column, truncated to
// Len() rows. Index it as row*Stride(). Tags and absent components report
// false.
func (a *Archetype) Data(c *ComponentType) (any, bool) {
	col, ok := a.columns[c]
	if !ok {
		return nil, false
	}
	return col.slice(a.length), true
}

// Allocate appends a row for the entity and returns its index, doubling
// capacity first if the table is full. Component data for the row is NOT
// written here; the caller writes it afterward.
func (a *Archetype) Allocate(id EntityID) int {
	if a.length == len(a.entities) {
		a.double()
	}
	row := a.length
	a.entities[row] = id
	a.length++
	return row
}

func (a *Archetype) double() {
	oldCap := len(a.entities)
	newCap := oldCap * 2
	grown := make([]EntityID, newCap)
	copy(grown, a.entities)
	for i := oldCap; i < newCap; i++ {
		grown[i] = noEntity
	}
	a.entities = grown
	for _, col := range a.columns {
		col.grow(newCap)
	}
}

// RemoveEntity vacates a row, keeping storage dense by moving the last
// occupied row into its place. Returns the id of the entity that was moved, or
// noEntity when the removed row was the last one (nothing moved). The caller
// must update the moved entity's row mapping.
func (a *Archetype) RemoveEntity(row int) (EntityID, error) {
	if row < 0 || row >= a.length {
		return noEntity, RowOutOfRangeError{Row: row, Length: a.length}
	}
	last := a.length - 1
	moved := noEntity
	if row != last {
		moved = a.entities[last]
		for _, col := range a.columns {
			col.copyRow(row, last)
		}
		a.entities[row] = moved
	}
	a.entities[last] = noEntity
	a.length--
	return moved, nil
}

// setValue writes one validated component value into an occupied row.
func (a *Archetype) setValue(row int, c *ComponentType, v any) error {
	col, ok := a.columns[c]
	if !ok {
		return MissingComponentError{ID: a.entities[row], Component: c}
	}
	return col.set(row, c, v)
}

// copyRowInto copies every component the destination shares with this
// archetype from srcRow into dstRow of dst.
func (a *Archetype) copyRowInto(dst *Archetype, dstRow, srcRow int) {
	for c, dcol := range dst.columns {
		if scol, ok := a.columns[c]; ok {
			dcol.copyRowFrom(scol, dstRow, srcRow)
		}
	}
}
