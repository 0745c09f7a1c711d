package depot

import "fmt"

// Kind identifies the numeric element type stored by a component.
type Kind int

const (
	I8 Kind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
)

func (k Kind) String() string {
	switch k {
	case I8:
		return "int8"
	case I16:
		return "int16"
	case I32:
		return "int32"
	case I64:
		return "int64"
	case U8:
		return "uint8"
	case U16:
		return "uint16"
	case U32:
		return "uint32"
	case U64:
		return "uint64"
	case F32:
		return "float32"
	case F64:
		return "float64"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ComponentType describes the storage layout of one component: a fixed element
// kind and a fixed shape, or a tag that carries no data at all. Descriptors are
// immutable; identity is the pointer itself, so declare each component once and
// share the pointer.
type ComponentType struct {
	name   string
	shape  []int
	kind   Kind
	stride int
	tag    bool
}

// ComponentMap carries per-component values for entity creation and mutation.
// Scalar components accept a bare element or a one-element slice; shaped
// components require a slice of exactly Stride() elements in row-major order.
// Tag entries must use a nil value.
type ComponentMap map[*ComponentType]any

func newComponentType(name string, kind Kind, shape ...int) *ComponentType {
	if len(shape) == 0 {
		shape = []int{1}
	}
	stride := 1
	for _, dim := range shape {
		if dim < 1 {
			panic(fmt.Sprintf("depot: component %q has non-positive shape dimension %d", name, dim))
		}
		stride *= dim
	}
	return &ComponentType{
		name:   name,
		shape:  shape,
		kind:   kind,
		stride: stride,
	}
}

func newTagType(name string) *ComponentType {
	return &ComponentType{name: name, tag: true}
}

func (c *ComponentType) Name() string { return c.name }

// Shape returns the declared shape. Tags have none.
func (c *ComponentType) Shape() []int {
	out := make([]int, len(c.shape))
	copy(out, c.shape)
	return out
}

func (c *ComponentType) Kind() Kind { return c.kind }

// Stride is the number of elements one row occupies (the product of Shape).
func (c *ComponentType) Stride() int { return c.stride }

func (c *ComponentType) IsTag() bool { return c.tag }

func (c *ComponentType) String() string {
	if c.tag {
		return fmt.Sprintf("%s(tag)", c.name)
	}
	return fmt.Sprintf("%s(%s%v)", c.name, c.kind, c.shape)
}

// validate checks a candidate value against the descriptor without storing it.
func (c *ComponentType) validate(v any) error {
	if c.tag {
		if v != nil {
			return ElementTypeError{Component: c, Value: v}
		}
		return nil
	}
	switch c.kind {
	case I8:
		return checkValue[int8](c, v)
	case I16:
		return checkValue[int16](c, v)
	case I32:
		return checkValue[int32](c, v)
	case I64:
		return checkValue[int64](c, v)
	case U8:
		return checkValue[uint8](c, v)
	case U16:
		return checkValue[uint16](c, v)
	case U32:
		return checkValue[uint32](c, v)
	case U64:
		return checkValue[uint64](c, v)
	case F32:
		return checkValue[float32](c, v)
	case F64:
		return checkValue[float64](c, v)
	}
	return ElementTypeError{Component: c, Value: v}
}

func checkValue[T any](c *ComponentType, v any) error {
	switch val := v.(type) {
	case T:
		if c.stride != 1 {
			return ShapeError{Component: c, Got: 1}
		}
	case []T:
		if len(val) != c.stride {
			return ShapeError{Component: c, Got: len(val)}
		}
	default:
		return ElementTypeError{Component: c, Value: v}
	}
	return nil
}

// newBuffer allocates a fresh element slice covering rows rows, typed to the
// component's kind. Used by gather to build merged copies.
func (c *ComponentType) newBuffer(rows int) any {
	n := rows * c.stride
	switch c.kind {
	case I8:
		return make([]int8, n)
	case I16:
		return make([]int16, n)
	case I32:
		return make([]int32, n)
	case I64:
		return make([]int64, n)
	case U8:
		return make([]uint8, n)
	case U16:
		return make([]uint16, n)
	case U32:
		return make([]uint32, n)
	case U64:
		return make([]uint64, n)
	case F32:
		return make([]float32, n)
	case F64:
		return make([]float64, n)
	}
	return nil
}

// column is the type-erased face of one archetype storage array.
type column interface {
	grow(newCap int)
	copyRow(dst, src int)
	copyRowFrom(src column, dstRow, srcRow int)
	set(row int, c *ComponentType, v any) error
	view(row int) any
	slice(rows int) any
	copyOut(dst any, dstRow, rows int)
}

type col[T any] struct {
	data   []T
	stride int
}

func newColumn(c *ComponentType, capacity int) column {
	switch c.kind {
	case I8:
		return &col[int8]{make([]int8, capacity*c.stride), c.stride}
	case I16:
		return &col[int16]{make([]int16, capacity*c.stride), c.stride}
	case I32:
		return &col[int32]{make([]int32, capacity*c.stride), c.stride}
	case I64:
		return &col[int64]{make([]int64, capacity*c.stride), c.stride}
	case U8:
		return &col[uint8]{make([]uint8, capacity*c.stride), c.stride}
	case U16:
		return &col[uint16]{make([]uint16, capacity*c.stride), c.stride}
	case U32:
		return &col[uint32]{make([]uint32, capacity*c.stride), c.stride}
	case U64:
		return &col[uint64]{make([]uint64, capacity*c.stride), c.stride}
	case F32:
		return &col[float32]{make([]float32, capacity*c.stride), c.stride}
	case F64:
		return &col[float64]{make([]float64, capacity*c.stride), c.stride}
	}
	panic(fmt.Sprintf("depot: component %q has unknown kind %d", c.name, int(c.kind)))
}

func (c *col[T]) grow(newCap int) {
	grown := make([]T, newCap*c.stride)
	copy(grown, c.data)
	c.data = grown
}

func (c *col[T]) copyRow(dst, src int) {
	copy(c.data[dst*c.stride:(dst+1)*c.stride], c.data[src*c.stride:(src+1)*c.stride])
}

func (c *col[T]) copyRowFrom(src column, dstRow, srcRow int) {
	from := src.(*col[T])
	copy(c.data[dstRow*c.stride:(dstRow+1)*c.stride], from.data[srcRow*c.stride:(srcRow+1)*c.stride])
}

func (c *col[T]) set(row int, ct *ComponentType, v any) error {
	switch val := v.(type) {
	case T:
		if c.stride != 1 {
			return ShapeError{Component: ct, Got: 1}
		}
		c.data[row] = val
	case []T:
		if len(val) != c.stride {
			return ShapeError{Component: ct, Got: len(val)}
		}
		copy(c.data[row*c.stride:], val)
	default:
		return ElementTypeError{Component: ct, Value: v}
	}
	return nil
}

func (c *col[T]) view(row int) any {
	return c.data[row*c.stride : (row+1)*c.stride : (row+1)*c.stride]
}

func (c *col[T]) slice(rows int) any {
	return c.data[: rows*c.stride : rows*c.stride]
}

func (c *col[T]) copyOut(dst any, dstRow, rows int) {
	copy(dst.([]T)[dstRow*c.stride:], c.data[:rows*c.stride])
}
