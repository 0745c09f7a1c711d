package depot

import (
	"errors"
	"testing"
)

// TestResourcesBasicOperations tests set, get, defaults, and delete
func TestResourcesBasicOperations(t *testing.T) {
	res := Factory.NewResources()

	res.Set("fps", 60)
	if v, ok := res.Get("fps"); !ok || v.(int) != 60 {
		t.Errorf("Get(fps) = %v, %v, want 60, true", v, ok)
	}
	if res.Len() != 1 {
		t.Errorf("Len() = %d, want 1", res.Len())
	}

	if _, ok := res.Get("missing"); ok {
		t.Errorf("Get(missing) reported presence")
	}
	if got := res.GetDefault("missing", 100); got.(int) != 100 {
		t.Errorf("GetDefault(missing) = %v, want 100", got)
	}
	if got := res.GetDefault("fps", 100); got.(int) != 60 {
		t.Errorf("GetDefault(fps) = %v, want stored 60", got)
	}

	res.Delete("fps")
	if _, ok := res.Get("fps"); ok {
		t.Errorf("key survived Delete()")
	}
	res.Delete("fps") // absent delete is a no-op
	if res.Len() != 0 {
		t.Errorf("Len() = %d, want 0", res.Len())
	}
}

// TestResourceAs tests typed retrieval and its failure kinds
func TestResourceAs(t *testing.T) {
	res := Factory.NewResources()
	res.Set("score", 100)

	score, err := ResourceAs[int](res, "score")
	if err != nil {
		t.Fatalf("ResourceAs() error: %v", err)
	}
	if score != 100 {
		t.Errorf("ResourceAs() = %d, want 100", score)
	}

	if _, err := ResourceAs[string](res, "score"); !errors.As(err, &ResourceTypeError{}) {
		t.Errorf("wrong-type error = %v, want ResourceTypeError", err)
	}
	if _, err := ResourceAs[int](res, "missing"); !errors.As(err, &MissingResourceError{}) {
		t.Errorf("missing-key error = %v, want MissingResourceError", err)
	}
}

// TestResourcesSetIfMissing tests that the first value wins
func TestResourcesSetIfMissing(t *testing.T) {
	res := Factory.NewResources()

	if got := res.SetIfMissing("config", true); got.(bool) != true {
		t.Errorf("SetIfMissing() = %v, want true", got)
	}
	if got := res.SetIfMissing("config", false); got.(bool) != true {
		t.Errorf("second SetIfMissing() = %v, want first-stored true", got)
	}
	if v, _ := res.Get("config"); v.(bool) != true {
		t.Errorf("stored value = %v, want true", v)
	}
}

// TestResourcesKeys tests key iteration
func TestResourcesKeys(t *testing.T) {
	res := Factory.NewResources()
	res.Set("a", 1)
	res.Set("b", 2)

	seen := make(map[string]bool)
	for k := range res.Keys() {
		seen[k] = true
	}
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Errorf("Keys() visited %v, want a and b", seen)
	}
}

// TestResourceNamespaces tests prefixed views over a shared store
func TestResourceNamespaces(t *testing.T) {
	res := Factory.NewResources()

	ns1 := res.Namespace("p1")
	ns2 := res.Namespace("p2")
	ns1.Set("score", 10)
	ns2.Set("score", 20)

	if v, _ := ns1.Get("score"); v.(int) != 10 {
		t.Errorf("ns1 score = %v, want 10", v)
	}
	if v, _ := res.Get("p1.score"); v.(int) != 10 {
		t.Errorf("root p1.score = %v, want 10", v)
	}
	if v, _ := res.Get("p2.score"); v.(int) != 20 {
		t.Errorf("root p2.score = %v, want 20", v)
	}

	// Trailing dot on the prefix is stripped
	render := res.Namespace("render.")
	render.Set("width", 1920)
	if _, ok := res.Get("render.width"); !ok {
		t.Errorf("prefixed key not stored under render.width")
	}
	if _, ok := res.Get("render..width"); ok {
		t.Errorf("double-dot key leaked into the store")
	}

	// Views read through to root writes
	res.Set("sys.param", "value")
	sys := res.Namespace("sys")
	if v, _ := sys.Get("param"); v.(string) != "value" {
		t.Errorf("view did not see root write: %v", v)
	}
	if got := sys.GetDefault("missing", "default"); got.(string) != "default" {
		t.Errorf("view GetDefault = %v, want default", got)
	}

	// SetIfMissing and Delete route through the prefix
	cache := res.Namespace("cache")
	if got := cache.SetIfMissing("size", 1024); got.(int) != 1024 {
		t.Errorf("view SetIfMissing = %v, want 1024", got)
	}
	if got := cache.SetIfMissing("size", 2048); got.(int) != 1024 {
		t.Errorf("second view SetIfMissing = %v, want first-stored 1024", got)
	}
	cache.Delete("size")
	if _, ok := res.Get("cache.size"); ok {
		t.Errorf("key survived view Delete()")
	}
}

// TestResourceNamespaceEmptyKey tests that views reject empty keys
func TestResourceNamespaceEmptyKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for empty key in a namespace")
		}
	}()
	Factory.NewResources().Namespace("test").Set("", 1)
}

// TestWorldOwnsResources tests that every world carries its own store
func TestWorldOwnsResources(t *testing.T) {
	w1 := Factory.NewWorld()
	w2 := Factory.NewWorld()

	w1.Resources().Set("tick", 1)
	if _, ok := w2.Resources().Get("tick"); ok {
		t.Errorf("resource leaked across worlds")
	}
	v, err := ResourceAs[int](w1.Resources(), "tick")
	if err != nil || v != 1 {
		t.Errorf("ResourceAs() = %d, %v, want 1, nil", v, err)
	}
}
