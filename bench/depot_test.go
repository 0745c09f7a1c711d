package bench

import (
	"testing"

	"github.com/TheBitDrifter/depot"
)

// go test -bench=. -benchmem

const (
	nPos    = 9000
	nPosVel = 1000
)

func setupWorld(b *testing.B) (*depot.World, *depot.ComponentType, *depot.ComponentType) {
	b.Helper()
	world := depot.Factory.NewWorld()
	position := depot.Factory.NewComponent("position", depot.F64, 2)
	velocity := depot.Factory.NewComponent("velocity", depot.F64, 2)

	for range nPosVel {
		if _, err := world.CreateEntity(depot.ComponentMap{
			position: []float64{0, 0},
			velocity: []float64{1, 2},
		}); err != nil {
			b.Fatal(err)
		}
	}
	for range nPos {
		if _, err := world.CreateEntity(depot.ComponentMap{
			position: []float64{0, 0},
		}); err != nil {
			b.Fatal(err)
		}
	}
	return world, position, velocity
}

func BenchmarkIterFetch(b *testing.B) {
	world, position, velocity := setupWorld(b)
	query := world.Query([]*depot.ComponentType{position, velocity})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for view := range query.Fetch() {
			pos := depot.ColumnAs[float64](view, position)
			vel := depot.ColumnAs[float64](view, velocity)
			for j := range view.Entities {
				pos[j*2] += vel[j*2]
				pos[j*2+1] += vel[j*2+1]
			}
		}
	}
}

func BenchmarkIterCursor(b *testing.B) {
	world, position, velocity := setupWorld(b)
	cursor := depot.Factory.NewCursor(world.Query([]*depot.ComponentType{position, velocity}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for cursor.Next() {
			pos := depot.CursorGet[float64](cursor, position)
			vel := depot.CursorGet[float64](cursor, velocity)
			pos[0] += vel[0]
			pos[1] += vel[1]
		}
	}
}

func BenchmarkGather(b *testing.B) {
	world, position, _ := setupWorld(b)
	query := world.Query([]*depot.ComponentType{position})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := query.Gather(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreateRemove(b *testing.B) {
	world := depot.Factory.NewWorld()
	position := depot.Factory.NewComponent("position", depot.F64, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, err := world.CreateEntity(depot.ComponentMap{position: []float64{1, 2}})
		if err != nil {
			b.Fatal(err)
		}
		if err := world.RemoveEntity(id); err != nil {
			b.Fatal(err)
		}
	}
}
