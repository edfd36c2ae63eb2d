package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	base := NewState(Point{X: 1, Y: 1})

	t.Run("Initial (Old is Nil)", func(t *testing.T) {
		d := Diff(nil, &base)
		require.NotNil(t, d)
		assert.False(t, d.Empty())
		assert.Equal(t, Right, *d.Direction)
		assert.Equal(t, EdgeWrap, *d.EdgeMode)
	})

	t.Run("Only IP moved", func(t *testing.T) {
		next := base
		next.IP = Point{X: 2, Y: 1}
		d := Diff(&base, &next)
		assert.True(t, d.Empty())
		assert.Equal(t, next.IP, d.IP)
	})

	t.Run("Turn and halt", func(t *testing.T) {
		next := base
		next.Direction = Up
		next.Halted = true
		d := Diff(&base, &next)
		require.NotNil(t, d.Direction)
		assert.Equal(t, Up, *d.Direction)
		assert.Nil(t, d.EdgeMode)
		require.NotNil(t, d.Halted)
		assert.True(t, *d.Halted)

		raw, err := json.Marshal(d)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "edge_mode")
	})

	t.Run("Nil new state", func(t *testing.T) {
		assert.Nil(t, Diff(&base, nil))
	})
}

func TestParseError(t *testing.T) {
	err := error(&ParseError{Kind: ErrMultipleRooms, First: Point{X: 0, Y: 0}, Second: Point{X: 4, Y: 2}})
	assert.ErrorIs(t, err, ErrMultipleRooms)
	assert.Contains(t, err.Error(), "(0,0)")
	assert.Contains(t, err.Error(), "(4,2)")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, Point{X: 4, Y: 2}, pe.Second)

	assert.ErrorIs(t, &ParseError{Kind: ErrNoRoom}, ErrNoRoom)
}
