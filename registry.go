package depot

import (
	"slices"
	"strconv"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// Registry assigns every component type a unique bit and derives composition
// signatures from those bits. A signature is the archetype identity: two
// compositions with the same members always produce the same signature,
// regardless of order or duplicates. Bits are assigned in first-seen order and
// never reassigned; registry state only grows.
//
// Signatures are only comparable within the registry that produced them.
// Not safe for concurrent mutation.
type Registry struct {
	bits     map[*ComponentType]uint32
	nextBit  uint32
	sigCache Cache[mask.Mask]
}

func newRegistry() *Registry {
	return &Registry{
		bits:     make(map[*ComponentType]uint32),
		sigCache: FactoryNewCache[mask.Mask](Config.signatureCacheCapacity),
	}
}

// Bit returns the component's bit position, assigning the next unused one on
// first sight. Repeated calls are idempotent.
func (r *Registry) Bit(c *ComponentType) uint32 {
	if bit, ok := r.bits[c]; ok {
		return bit
	}
	bit := r.nextBit
	r.bits[c] = bit
	r.nextBit++
	return bit
}

// Signature folds the composition's bits into a single mask, deduplicating and
// ignoring order. Results are cached per normalized composition.
func (r *Registry) Signature(components []*ComponentType) mask.Mask {
	sorted := r.SortComponents(components)
	key := r.compositionKey(sorted)
	if idx, ok := r.sigCache.GetIndex(key); ok {
		return *r.sigCache.GetItem(idx)
	}
	var sig mask.Mask
	for _, c := range sorted {
		sig.Mark(r.bits[c])
	}
	// A full cache only costs the recompute, so the error is ignored.
	_, _ = r.sigCache.Register(key, sig)
	return sig
}

// SortComponents deduplicates and orders components by assigned bit, assigning
// bits to components seen for the first time. Archetype compositions are
// normalized through this before any signature lookup.
func (r *Registry) SortComponents(components []*ComponentType) []*ComponentType {
	sorted := make([]*ComponentType, 0, len(components))
	seen := make(map[*ComponentType]struct{}, len(components))
	for _, c := range components {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		r.Bit(c)
		sorted = append(sorted, c)
	}
	slices.SortFunc(sorted, func(a, b *ComponentType) int {
		return int(r.bits[a]) - int(r.bits[b])
	})
	return sorted
}

// compositionKey builds the cache key for an already-normalized composition.
func (r *Registry) compositionKey(sorted []*ComponentType) string {
	var b strings.Builder
	for i, c := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(r.bits[c]), 10))
	}
	return b.String()
}
