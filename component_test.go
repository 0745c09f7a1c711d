package depot

import (
	"errors"
	"testing"
)

// TestComponentDescriptors tests shape, stride, and tag flags
func TestComponentDescriptors(t *testing.T) {
	tests := []struct {
		name       string
		component  *ComponentType
		wantStride int
		wantTag    bool
	}{
		{"default scalar", Factory.NewComponent("mass", F64), 1, false},
		{"vector", Factory.NewComponent("position", F64, 2), 2, false},
		{"matrix", Factory.NewComponent("transform", F32, 3, 3), 9, false},
		{"tag", Factory.NewTag("frozen"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.component.IsTag(); got != tt.wantTag {
				t.Errorf("IsTag() = %v, want %v", got, tt.wantTag)
			}
			if tt.wantTag {
				return
			}
			if got := tt.component.Stride(); got != tt.wantStride {
				t.Errorf("Stride() = %d, want %d", got, tt.wantStride)
			}
		})
	}
}

// TestComponentValidation tests value checks against the descriptor
func TestComponentValidation(t *testing.T) {
	scalar := Factory.NewComponent("mass", F64)
	vec2 := Factory.NewComponent("position", F64, 2)
	count := Factory.NewComponent("count", I32)
	frozen := Factory.NewTag("frozen")

	tests := []struct {
		name      string
		component *ComponentType
		value     any
		wantErr   error
	}{
		{"scalar bare element", scalar, float64(1.5), nil},
		{"scalar one-element slice", scalar, []float64{1.5}, nil},
		{"scalar wrong kind", scalar, float32(1.5), ElementTypeError{}},
		{"scalar oversized", scalar, []float64{1, 2}, ShapeError{}},
		{"vector exact", vec2, []float64{1, 2}, nil},
		{"vector short", vec2, []float64{1}, ShapeError{}},
		{"vector bare element", vec2, float64(1), ShapeError{}},
		{"vector wrong kind", vec2, []float32{1, 2}, ElementTypeError{}},
		{"int exact", count, int32(7), nil},
		{"int from untyped-ish", count, int(7), ElementTypeError{}},
		{"tag nil", frozen, nil, nil},
		{"tag with data", frozen, float64(1), ElementTypeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.component.validate(tt.value)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validate() = nil, want %T", tt.wantErr)
			}
			switch tt.wantErr.(type) {
			case ShapeError:
				var target ShapeError
				if !errors.As(err, &target) {
					t.Errorf("validate() error = %v, want ShapeError", err)
				}
			case ElementTypeError:
				var target ElementTypeError
				if !errors.As(err, &target) {
					t.Errorf("validate() error = %v, want ElementTypeError", err)
				}
			}
		})
	}
}

// TestComponentShapePanics tests that bad shapes are rejected at declaration
func TestComponentShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non-positive shape dimension")
		}
	}()
	Factory.NewComponent("bad", F64, 0)
}
