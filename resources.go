package depot

import (
	"fmt"
	"iter"
	"strings"
)

// Resources is a string-keyed store for world-global state that does not
// belong to any entity (input snapshots, timing, tuning values). Keys are
// namespaced with dots ("render.width", "audio.volume"); Namespace returns a
// prefixed view so subsystems can share one store without colliding.
//
// Values are untyped; use ResourceAs for checked retrieval.
type Resources struct {
	data map[string]any
}

func newResources() *Resources {
	return &Resources{data: make(map[string]any)}
}

// Get returns the value for key and whether it exists.
func (r *Resources) Get(key string) (any, bool) {
	v, ok := r.data[key]
	return v, ok
}

// GetDefault returns the value for key, or def when absent.
func (r *Resources) GetDefault(key string, def any) any {
	if v, ok := r.data[key]; ok {
		return v
	}
	return def
}

// Set stores a value, replacing any previous one.
func (r *Resources) Set(key string, value any) {
	r.data[key] = value
}

// SetIfMissing stores the value only when the key is absent and returns the
// value that ends up stored.
func (r *Resources) SetIfMissing(key string, value any) any {
	if v, ok := r.data[key]; ok {
		return v
	}
	r.data[key] = value
	return value
}

// Delete removes a key. Absent keys are ignored.
func (r *Resources) Delete(key string) {
	delete(r.data, key)
}

func (r *Resources) Len() int { return len(r.data) }

// Keys iterates every stored key in unspecified order.
func (r *Resources) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range r.data {
			if !yield(k) {
				return
			}
		}
	}
}

// Namespace returns a view that reads and writes keys under "prefix.". A
// trailing dot on the prefix is stripped.
func (r *Resources) Namespace(prefix string) ResourceView {
	return ResourceView{root: r, prefix: strings.TrimSuffix(prefix, ".")}
}

// ResourceAs retrieves a value with an explicit type. Absent keys fail with
// MissingResourceError; present values of another type fail with
// ResourceTypeError.
func ResourceAs[T any](r *Resources, key string) (T, error) {
	var zero T
	v, ok := r.data[key]
	if !ok {
		return zero, MissingResourceError{Key: key}
	}
	typed, ok := v.(T)
	if !ok {
		return zero, ResourceTypeError{Key: key, Value: v, Want: fmt.Sprintf("%T", zero)}
	}
	return typed, nil
}

// ResourceView is a namespaced window into a Resources store: key "k" maps to
// "prefix.k" in the root. Views are cheap values; copy them freely.
type ResourceView struct {
	root   *Resources
	prefix string
}

func (v ResourceView) key(key string) string {
	if key == "" {
		panic("depot: empty resource key in namespace " + v.prefix)
	}
	if v.prefix == "" {
		return key
	}
	return v.prefix + "." + key
}

func (v ResourceView) Get(key string) (any, bool) {
	return v.root.Get(v.key(key))
}

func (v ResourceView) GetDefault(key string, def any) any {
	return v.root.GetDefault(v.key(key), def)
}

func (v ResourceView) Set(key string, value any) {
	v.root.Set(v.key(key), value)
}

func (v ResourceView) SetIfMissing(key string, value any) any {
	return v.root.SetIfMissing(v.key(key), value)
}

func (v ResourceView) Delete(key string) {
	v.root.Delete(v.key(key))
}
