package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	room, local := Decompose(Point{X: -1, Y: 7}, 5)
	assert.Equal(t, Point{X: -1, Y: 1}, room)
	assert.Equal(t, Point{X: 4, Y: 2}, local)

	for s := 1; s <= 6; s++ {
		for x := -20; x <= 20; x++ {
			for _, y := range []int{-13, -5, -1, 0, 1, 4, 12} {
				p := Point{X: x, Y: y}
				room, local := Decompose(p, s)
				assert.Equal(t, p, room.Scale(s).Add(local), "p=%s s=%d", p, s)
				assert.True(t, local.X >= 0 && local.X < s, "local x out of range for p=%s s=%d", p, s)
				assert.True(t, local.Y >= 0 && local.Y < s, "local y out of range for p=%s s=%d", p, s)
			}
		}
	}
}

func TestDecompose_PanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { Decompose(Point{}, 0) })
}

func TestDirection_Turns(t *testing.T) {
	assert.Equal(t, Down, Right.TurnCW())
	assert.Equal(t, Left, Down.TurnCW())
	assert.Equal(t, Up, Left.TurnCW())
	assert.Equal(t, Right, Up.TurnCW())

	assert.Equal(t, Up, Right.TurnCCW())
	assert.Equal(t, Left, Up.TurnCCW())
	assert.Equal(t, Down, Left.TurnCCW())
	assert.Equal(t, Right, Down.TurnCCW())

	for _, d := range []Direction{Left, Right, Up, Down} {
		assert.True(t, d.TurnCW().Valid())
		assert.Equal(t, d, d.TurnCW().TurnCCW())
	}
	assert.False(t, Direction{}.Valid())
}

func TestEdgeMode_Transform(t *testing.T) {
	_, ok := EdgeWrap.Transform()
	assert.False(t, ok)

	cases := map[EdgeMode]Transform{
		EdgeCopy:      TransformIdentity,
		EdgeRotateCW:  TransformCW,
		EdgeRotateCCW: TransformCCW,
		EdgeRotate180: TransformRotate180,
	}
	for mode, want := range cases {
		got, ok := mode.Transform()
		assert.True(t, ok, mode.String())
		assert.Equal(t, want, got, mode.String())
	}
}

func TestEdgeMode_Text(t *testing.T) {
	for mode := EdgeWrap; mode <= EdgeRotate180; mode++ {
		text, err := mode.MarshalText()
		assert.NoError(t, err)

		var back EdgeMode
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, mode, back)
	}

	var m EdgeMode
	assert.Error(t, m.UnmarshalText([]byte("spiral")))
}

func TestEdgeModeFor(t *testing.T) {
	cases := map[rune]EdgeMode{
		'=': EdgeWrap,
		'&': EdgeCopy,
		'{': EdgeRotateCCW,
		'}': EdgeRotateCW,
		'!': EdgeRotate180,
	}
	for op, want := range cases {
		got, ok := EdgeModeFor(op)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := EdgeModeFor('x')
	assert.False(t, ok)
}

func TestOpName(t *testing.T) {
	assert.Equal(t, "halt", OpName(OpHalt))
	assert.Equal(t, "edge: rotate clockwise", OpName(OpRotateCW))
	assert.Equal(t, "nop", OpName('x'))
	assert.Equal(t, "nop", OpName(' '))
}
