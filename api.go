package depot

import "iter"

// Store is the orchestrator-facing surface: entity lifecycle, component
// access, cached queries, and the phase discipline.
type Store interface {
	ReserveID() EntityID
	CreateEntity(ComponentMap) (EntityID, error)
	RemoveEntity(EntityID) error
	AddComponents(EntityID, ComponentMap) error
	RemoveComponents(EntityID, ...*ComponentType) error
	GetComponent(EntityID, *ComponentType) (any, error)
	SetComponent(EntityID, *ComponentType, any) error
	Query(include []*ComponentType, exclude ...*ComponentType) *Query
	Resources() *Resources
	Locked() bool
	Lock()
	Unlock()
	Flush() error
	Clear()
}

// Commands is the deferred structural mutation log used during locked phases.
type Commands interface {
	CreateEntity(ComponentMap) EntityID
	RemoveEntity(EntityID)
	AddComponents(EntityID, ComponentMap)
	RemoveComponents(EntityID, ...*ComponentType)
	Len() int
	Flush() error
	Clear()
}

type iCursor interface {
	Rows() iter.Seq2[int, *Archetype]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
}

var (
	_ Store    = &World{}
	_ Commands = &CommandBuffer{}
)
