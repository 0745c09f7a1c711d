/*
Package depot provides archetype-based entity storage and querying for games and simulations.

Depot keeps entities with identical component compositions together in dense columnar
tables (archetypes), so bulk processing stays cache friendly. Component layouts are
declared at runtime as descriptors (element kind plus a fixed shape, or a storage-free
tag), and every mutation is validated against that descriptor.

Core Concepts:

  - Entity: A unique integer id that represents a simulation object.
  - Component: A fixed-shape, fixed-kind data descriptor attached to entities.
  - Archetype: A dense table holding all entities with one exact composition.
  - Query: A cached include/exclude match over archetypes, with view or copy access.
  - Command Buffer: A FIFO log of structural changes, replayed between passes.

Basic Usage:

	world := depot.Factory.NewWorld()

	// Define components
	position := depot.Factory.NewComponent("position", depot.F64, 2)
	velocity := depot.Factory.NewComponent("velocity", depot.F64, 2)

	// Create entities
	for range 100 {
		world.CreateEntity(depot.ComponentMap{
			position: []float64{0, 0},
			velocity: []float64{1, 2},
		})
	}

	// Query entities and process them
	query := world.Query([]*depot.ComponentType{position, velocity})
	for view := range query.Fetch() {
		pos := depot.ColumnAs[float64](view, position)
		vel := depot.ColumnAs[float64](view, velocity)
		for i := range view.Entities {
			pos[i*2] += vel[i*2]
			pos[i*2+1] += vel[i*2+1]
		}
	}

Structural changes made while iterating should go through world.Buffer() and be
flushed between passes; see the Cursor and CommandBuffer types.

Depot is a standalone storage core; schedulers, event systems, and rendering live elsewhere.
*/
package depot
