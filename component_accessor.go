package depot

// Numeric covers every element type a component column can hold.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ColumnAs types a view's column for a component. Returns nil when the view
// lacks the component or T does not match its kind. The slice is live; index
// it as row*Stride().
func ColumnAs[T Numeric](v View, comp *ComponentType) []T {
	data, _ := v.Data[comp].([]T)
	return data
}

// RowAs types one row of a view's column (length Stride()).
func RowAs[T Numeric](v View, comp *ComponentType, row int) []T {
	data := ColumnAs[T](v, comp)
	if data == nil {
		return nil
	}
	stride := comp.Stride()
	return data[row*stride : (row+1)*stride]
}

// GatheredAs types a gathered result's merged column for a component.
// The slice is a copy; scatter writes back through Spans.
func GatheredAs[T Numeric](g *Gathered, comp *ComponentType) []T {
	data, _ := g.Data[comp].([]T)
	return data
}

// ValueAs types a single component value, as returned by GetComponent or a
// cursor (length Stride()). The slice is a live row view.
func ValueAs[T Numeric](v any) []T {
	data, _ := v.([]T)
	return data
}

// CursorGet types the cursor's current row for a component. Returns nil when
// the current archetype lacks the component.
func CursorGet[T Numeric](c *Cursor, comp *ComponentType) []T {
	v, ok := c.Get(comp)
	if !ok {
		return nil
	}
	return ValueAs[T](v)
}
