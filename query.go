package depot

import (
	"iter"
	"slices"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// View is one archetype's worth of query results. Entities and the Data
// values are live views truncated to the archetype's current length, so
// in-place writes are immediately visible; Data holds one element slice per
// non-tag component, indexed as row*Stride().
type View struct {
	Archetype *Archetype
	Entities  []EntityID
	Data      map[*ComponentType]any
}

// Span is a half-open row range [Start, End) within a gathered result.
type Span struct {
	Start int
	End   int
}

// Gathered is a cross-archetype merged copy of query results. Unlike fetch
// views, the arrays are fresh copies: writes must be scattered back through
// the per-archetype spans to take effect.
type Gathered struct {
	Entities []EntityID
	Spans    map[*Archetype]Span
	Data     map[*ComponentType]any
	Tags     map[*ComponentType][]bool
}

// Query matches every archetype whose signature contains all included
// components and none of the excluded ones. The match list updates
// incrementally as archetypes are created; membership is append-only in
// archetype creation order.
type Query struct {
	include     []*ComponentType
	includeMask mask.Mask
	excludeMask mask.Mask
	matches     []*Archetype
}

func newQuery(include, exclude []*ComponentType, registry *Registry) *Query {
	sorted := registry.SortComponents(include)
	return &Query{
		include:     sorted,
		includeMask: registry.Signature(sorted),
		excludeMask: registry.Signature(exclude),
	}
}

// Matches lists the currently matching archetypes. The slice is shared; do
// not modify it.
func (q *Query) Matches() []*Archetype { return q.matches }

// TryAdd appends the archetype to the match list iff its signature satisfies
// both masks. Re-adding a known archetype is a no-op.
func (q *Query) TryAdd(arch *Archetype) {
	if slices.Contains(q.matches, arch) {
		return
	}
	sig := arch.Signature()
	if !sig.ContainsAll(q.includeMask) {
		return
	}
	if !sig.ContainsNone(q.excludeMask) {
		return
	}
	q.matches = append(q.matches, arch)
}

// Fetch iterates the matching archetypes lazily, yielding live per-archetype
// views. Optional components are included in a view's Data when that archetype
// has them; tags never appear in Data. The sequence is restartable: ranging
// again re-iterates the current matches.
//
// Structural mutation during iteration invalidates rows; route changes through
// a command buffer and flush between passes.
func (q *Query) Fetch(optional ...*ComponentType) iter.Seq[View] {
	return func(yield func(View) bool) {
		for _, arch := range q.matches {
			data := make(map[*ComponentType]any, len(q.include)+len(optional))
			for _, c := range q.include {
				if d, ok := arch.Data(c); ok {
					data[c] = d
				}
			}
			for _, c := range optional {
				if d, ok := arch.Data(c); ok {
					data[c] = d
				}
			}
			if !yield(View{Archetype: arch, Entities: arch.Entities(), Data: data}) {
				return
			}
		}
	}
}

// Gather merges all matching archetypes into freshly allocated arrays: one
// merged id array, one element array per non-tag included component, and a
// per-row presence flag array for each optional tag. Spans records each
// archetype's row range so results can be scattered back. Only tags are legal
// as optionals here; anything else fails with GatherOptionalError.
func (q *Query) Gather(optional ...*ComponentType) (*Gathered, error) {
	for _, c := range optional {
		if !c.IsTag() {
			return nil, GatherOptionalError{Component: c}
		}
	}

	total := 0
	for _, arch := range q.matches {
		total += arch.Len()
	}
	g := &Gathered{
		Entities: make([]EntityID, total),
		Spans:    make(map[*Archetype]Span, len(q.matches)),
		Data:     make(map[*ComponentType]any),
		Tags:     make(map[*ComponentType][]bool, len(optional)),
	}
	for _, c := range q.include {
		if !c.IsTag() {
			g.Data[c] = c.newBuffer(total)
		}
	}
	for _, c := range optional {
		g.Tags[c] = make([]bool, total)
	}

	offset := 0
	for _, arch := range q.matches {
		n := arch.Len()
		copy(g.Entities[offset:], arch.Entities())
		g.Spans[arch] = Span{Start: offset, End: offset + n}
		for _, c := range q.include {
			if c.IsTag() {
				continue
			}
			arch.columns[c].copyOut(g.Data[c], offset, n)
		}
		for _, c := range optional {
			if arch.Contains(c) {
				flags := g.Tags[c]
				for i := range n {
					flags[offset+i] = true
				}
			}
		}
		offset += n
	}
	return g, nil
}

// QueryManager caches one Query per distinct include/exclude composition and
// fans archetype-creation notifications out to every cached query, so live
// queries stay current without rescanning.
type QueryManager struct {
	registry *Registry
	queries  map[string]*Query
	ordered  []*Query
}

func newQueryManager(registry *Registry) *QueryManager {
	return &QueryManager{
		registry: registry,
		queries:  make(map[string]*Query),
	}
}

// GetQuery returns the cached query for the composition pair, creating it on
// first use. The second return reports whether the query is new; a new query
// has an empty match list and must be backfilled against existing archetypes
// by the caller.
func (qm *QueryManager) GetQuery(include, exclude []*ComponentType) (*Query, bool) {
	key := qm.key(include, exclude)
	if q, ok := qm.queries[key]; ok {
		return q, false
	}
	q := newQuery(include, exclude, qm.registry)
	qm.queries[key] = q
	qm.ordered = append(qm.ordered, q)
	return q, true
}

// OnArchCreated offers a newly created archetype to every cached query. The
// entity manager invokes this through its creation hook.
func (qm *QueryManager) OnArchCreated(arch *Archetype) {
	for _, q := range qm.ordered {
		q.TryAdd(arch)
	}
}

func (qm *QueryManager) key(include, exclude []*ComponentType) string {
	var b strings.Builder
	b.WriteString(qm.registry.compositionKey(qm.registry.SortComponents(include)))
	b.WriteByte('|')
	b.WriteString(qm.registry.compositionKey(qm.registry.SortComponents(exclude)))
	return b.String()
}
