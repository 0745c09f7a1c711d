package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld()
}

func (f factory) NewRegistry() *Registry {
	return newRegistry()
}

// NewManager builds a standalone entity manager. onArchCreated may be nil;
// pass a QueryManager's OnArchCreated to keep cached queries current.
func (f factory) NewManager(registry *Registry, onArchCreated func(*Archetype)) *Manager {
	return newManager(registry, onArchCreated)
}

// NewResources builds a standalone resource store. Worlds carry their own;
// this is for tests and tooling that need one without a world.
func (f factory) NewResources() *Resources {
	return newResources()
}

func (f factory) NewQueryManager(registry *Registry) *QueryManager {
	return newQueryManager(registry)
}

func (f factory) NewCommandBuffer(manager *Manager) *CommandBuffer {
	return newCommandBuffer(manager)
}

func (f factory) NewCursor(query *Query) *Cursor {
	return newCursor(query)
}

// NewComponent declares a component storing elements of the given kind in the
// given shape (scalar when omitted). Declare once and share the pointer; the
// descriptor itself is the component's identity.
func (f factory) NewComponent(name string, kind Kind, shape ...int) *ComponentType {
	return newComponentType(name, kind, shape...)
}

// NewTag declares a storage-free component whose presence alone is the data.
func (f factory) NewTag(name string) *ComponentType {
	return newTagType(name)
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
