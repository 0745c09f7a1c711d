package depot

import "fmt"

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is locked; route structural changes through the command buffer"
}

type UnknownEntityError struct {
	ID EntityID
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.ID)
}

type PendingEntityError struct {
	ID EntityID
}

func (e PendingEntityError) Error() string {
	return fmt.Sprintf("entity %d is reserved but not yet materialized", e.ID)
}

type NotPendingError struct {
	ID EntityID
}

func (e NotPendingError) Error() string {
	return fmt.Sprintf("entity %d is already materialized", e.ID)
}

type ShapeError struct {
	Component *ComponentType
	Got       int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("component %s expects shape %v (%d elements), got %d elements",
		e.Component.Name(), e.Component.shape, e.Component.Stride(), e.Got)
}

type ElementTypeError struct {
	Component *ComponentType
	Value     any
}

func (e ElementTypeError) Error() string {
	if e.Component.IsTag() {
		return fmt.Sprintf("tag component %s carries no data, got %T", e.Component.Name(), e.Value)
	}
	return fmt.Sprintf("component %s expects element type %s, got %T",
		e.Component.Name(), e.Component.Kind(), e.Value)
}

type MissingComponentError struct {
	ID        EntityID
	Component *ComponentType
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("entity %d does not have component %s", e.ID, e.Component.Name())
}

type RowOutOfRangeError struct {
	Row    int
	Length int
}

func (e RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row %d is out of range [0, %d)", e.Row, e.Length)
}

type TagValueError struct {
	Component *ComponentType
}

func (e TagValueError) Error() string {
	return fmt.Sprintf("tag component %s has no stored data", e.Component.Name())
}

type GatherOptionalError struct {
	Component *ComponentType
}

func (e GatherOptionalError) Error() string {
	return fmt.Sprintf("gather optionals must be tags, got %s", e.Component)
}

type MissingResourceError struct {
	Key string
}

func (e MissingResourceError) Error() string {
	return fmt.Sprintf("resource %q does not exist", e.Key)
}

type ResourceTypeError struct {
	Key   string
	Value any
	Want  string
}

func (e ResourceTypeError) Error() string {
	return fmt.Sprintf("resource %q is of type %T, expected %s", e.Key, e.Value, e.Want)
}
