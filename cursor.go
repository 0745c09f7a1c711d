package depot

import "iter"

var _ iCursor = &Cursor{}

// Cursor walks a query's results one row at a time, crossing archetype
// boundaries transparently. It reads the match list live, so a cursor built
// before new archetypes appear will still visit them on its next pass.
//
// Rows are read at iteration time: structural mutation mid-walk invalidates
// the cursor's position. Defer such changes to a command buffer.
type Cursor struct {
	query *Query

	// Current iteration state
	matchIndex int
	row        int
	remaining  int
	started    bool
}

func newCursor(query *Query) *Cursor {
	return &Cursor{query: query}
}

// Next advances to the next occupied row, skipping empty archetypes. It
// returns false and resets once every match is exhausted, so the cursor can
// be reused for another pass.
func (c *Cursor) Next() bool {
	if c.started && c.row+1 < c.remaining {
		c.row++
		return true
	}
	if !c.started {
		c.started = true
		c.matchIndex = 0
	} else {
		c.matchIndex++
	}
	matches := c.query.Matches()
	for c.matchIndex < len(matches) {
		c.remaining = matches[c.matchIndex].Len()
		if c.remaining > 0 {
			c.row = 0
			return true
		}
		c.matchIndex++
	}
	c.Reset()
	return false
}

// Rows yields (row, archetype) pairs across all matches.
func (c *Cursor) Rows() iter.Seq2[int, *Archetype] {
	return func(yield func(int, *Archetype) bool) {
		for c.Next() {
			if !yield(c.row, c.Archetype()) {
				c.Reset()
				return
			}
		}
	}
}

// Archetype returns the archetype the cursor is positioned in.
func (c *Cursor) Archetype() *Archetype {
	return c.query.Matches()[c.matchIndex]
}

// Row returns the current row index within the current archetype.
func (c *Cursor) Row() int { return c.row }

// EntityID returns the id occupying the current row.
func (c *Cursor) EntityID() EntityID {
	return c.Archetype().entities[c.row]
}

// Get returns the current row's element view for a component, or false when
// the archetype lacks it (or it is a tag).
func (c *Cursor) Get(comp *ComponentType) (any, bool) {
	col, ok := c.Archetype().columns[comp]
	if !ok {
		return nil, false
	}
	return col.view(c.row), true
}

// RemainingInArchetype reports how many rows are left in the current
// archetype, the current one included.
func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.row
}

// TotalMatched counts the rows across all matching archetypes.
func (c *Cursor) TotalMatched() int {
	total := 0
	for _, arch := range c.query.Matches() {
		total += arch.Len()
	}
	return total
}

func (c *Cursor) Reset() {
	c.matchIndex = 0
	c.row = 0
	c.remaining = 0
	c.started = false
}
