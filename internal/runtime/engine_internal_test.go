package runtime

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/nhohnhehr/pkg/adapters/memory"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankGrid(size int) *domain.Grid {
	rows := make([]string, size)
	for y := range rows {
		row := make([]rune, size)
		for x := range row {
			row[x] = rune('a' + (y*size+x)%26)
		}
		rows[y] = string(row)
	}
	rows[0] = "$" + rows[0][1:]
	return domain.MustGrid(rows...)
}

func TestAdvance_WrapNeverLeavesRoom(t *testing.T) {
	ctx := context.Background()
	for size := 1; size <= 4; size++ {
		for _, dir := range []domain.Direction{domain.Left, domain.Right, domain.Up, domain.Down} {
			t.Run(fmt.Sprintf("size %d %s", size, dir), func(t *testing.T) {
				e, err := NewEngine(blankGrid(size), memory.NewTape())
				require.NoError(t, err)

				for _, room := range []domain.Point{{}, {X: -3, Y: 2}} {
					for y := 0; y < size; y++ {
						for x := 0; x < size; x++ {
							start := room.Scale(size).Add(domain.Point{X: x, Y: y})
							e.state.IP = start
							e.state.Direction = dir
							e.state.EdgeMode = domain.EdgeWrap

							require.NoError(t, e.advance(ctx))
							assert.Equal(t, room, domain.RoomOf(e.state.IP, size), "from %s", start)
						}
					}
				}
				assert.Equal(t, 1, e.lattice.Len())
			})
		}
	}
}

func TestAdvance_CopyMatchesSource(t *testing.T) {
	ctx := context.Background()
	origin := blankGrid(3)
	neighbours := map[domain.Direction]domain.Point{
		domain.Left:  {X: -1, Y: 0},
		domain.Right: {X: 1, Y: 0},
		domain.Up:    {X: 0, Y: -1},
		domain.Down:  {X: 0, Y: 1},
	}
	edge := map[domain.Direction]domain.Point{
		domain.Left:  {X: 0, Y: 1},
		domain.Right: {X: 2, Y: 1},
		domain.Up:    {X: 1, Y: 0},
		domain.Down:  {X: 1, Y: 2},
	}

	for dir, want := range neighbours {
		t.Run(dir.String(), func(t *testing.T) {
			e, err := NewEngine(origin, memory.NewTape())
			require.NoError(t, err)
			e.state.IP = edge[dir]
			e.state.Direction = dir
			e.state.EdgeMode = domain.EdgeCopy

			require.NoError(t, e.advance(ctx))
			assert.Equal(t, want, domain.RoomOf(e.state.IP, 3))

			room, ok := e.lattice.Room(want)
			require.True(t, ok)
			for y := 0; y < 3; y++ {
				for x := 0; x < 3; x++ {
					a, _ := origin.Lookup(x, y)
					b, _ := room.Lookup(x, y)
					assert.Equal(t, a, b)
				}
			}
		})
	}
}
