package runtime_test

import (
	"testing"

	"github.com/aretw0/nhohnhehr/internal/runtime"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLattice(t *testing.T) {
	origin := domain.MustGrid("ab", "cd")
	l := runtime.NewLattice(origin)

	assert.Equal(t, 2, l.RoomSize())
	assert.Equal(t, 1, l.Len())

	t.Run("Get in origin", func(t *testing.T) {
		c, err := l.Get(domain.Point{X: 1, Y: 1})
		require.NoError(t, err)
		assert.Equal(t, 'd', c)
	})

	t.Run("Get in missing room", func(t *testing.T) {
		_, err := l.Get(domain.Point{X: -1, Y: 0})
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("EnsureRoom grows once", func(t *testing.T) {
		west := domain.Point{X: -1, Y: 0}
		created, err := l.EnsureRoom(west, domain.Point{}, domain.TransformRotate180)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 2, l.Len())

		c, err := l.Get(domain.Point{X: -1, Y: 0})
		require.NoError(t, err)
		assert.Equal(t, 'c', c, "local (1,0) of the rotated room")

		created, err = l.EnsureRoom(west, domain.Point{}, domain.TransformIdentity)
		require.NoError(t, err)
		assert.False(t, created)

		room, ok := l.Room(west)
		require.True(t, ok)
		assert.True(t, room.Equal(origin.Transform(domain.TransformRotate180)), "existing rooms are never re-transformed")
	})

	t.Run("EnsureRoom from missing source", func(t *testing.T) {
		_, err := l.EnsureRoom(domain.Point{X: 5, Y: 5}, domain.Point{X: 9, Y: 9}, domain.TransformIdentity)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("Origin untouched", func(t *testing.T) {
		room, ok := l.Room(domain.Point{})
		require.True(t, ok)
		assert.Equal(t, []string{"ab", "cd"}, room.Rows())
	})
}
