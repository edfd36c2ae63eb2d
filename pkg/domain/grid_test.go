package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternGrid builds a size x size grid where every cell is distinct.
func patternGrid(t *testing.T, size int) *Grid {
	t.Helper()
	rows := make([][]rune, size)
	for y := range rows {
		rows[y] = make([]rune, size)
		for x := range rows[y] {
			rows[y][x] = rune('A' + y*size + x)
		}
	}
	g, err := NewGrid(rows)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	t.Run("Rejects empty", func(t *testing.T) {
		_, err := NewGrid(nil)
		assert.Error(t, err)
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := NewGrid([][]rune{[]rune("ab"), []rune("c")})
		assert.Error(t, err)
	})

	t.Run("Copies input", func(t *testing.T) {
		rows := [][]rune{[]rune("ab"), []rune("cd")}
		g, err := NewGrid(rows)
		require.NoError(t, err)
		rows[0][0] = 'z'
		c, err := g.Lookup(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 'a', c)
	})
}

func TestGrid_Lookup(t *testing.T) {
	g := MustGrid("ab", "cd")

	c, err := g.Lookup(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 'b', c)

	c, err = g.At(Point{X: 0, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 'c', c)

	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.At(p)
		assert.True(t, errors.Is(err, ErrOutOfRange), "lookup %s", p)
	}
}

func TestGrid_Find(t *testing.T) {
	g := MustGrid("..$", "$..", "...")
	p, ok := g.Find('$')
	require.True(t, ok)
	assert.Equal(t, Point{X: 2, Y: 0}, p, "row-major scan picks the first row first")

	_, ok = g.Find('@')
	assert.False(t, ok)
}

func TestGrid_Transform(t *testing.T) {
	g := MustGrid(
		"abc",
		"def",
		"ghi",
	)

	tests := []struct {
		kind Transform
		want []string
	}{
		{TransformIdentity, []string{"abc", "def", "ghi"}},
		{TransformRotate180, []string{"ihg", "fed", "cba"}},
		{TransformCW, []string{"gda", "heb", "ifc"}},
		{TransformCCW, []string{"cfi", "beh", "adg"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			out := g.Transform(tt.kind)
			assert.Equal(t, tt.want, out.Rows())
			assert.Equal(t, []string{"abc", "def", "ghi"}, g.Rows(), "source must not change")
		})
	}
}

func TestGrid_TransformInverses(t *testing.T) {
	for size := 1; size <= 7; size++ {
		g := patternGrid(t, size)
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			assert.True(t, g.Equal(g.Transform(TransformRotate180).Transform(TransformRotate180)))
			assert.True(t, g.Equal(g.Transform(TransformCW).Transform(TransformCCW)))
			assert.True(t, g.Equal(g.Transform(TransformCCW).Transform(TransformCW)))
			assert.True(t, g.Equal(g.Transform(TransformIdentity)))

			for _, k := range []Transform{TransformIdentity, TransformCW, TransformCCW, TransformRotate180} {
				assert.True(t, g.Equal(g.Transform(k).Transform(k.Inverse())), "inverse of %s", k)
			}

			twice := g.Transform(TransformCW).Transform(TransformCW)
			assert.True(t, twice.Equal(g.Transform(TransformRotate180)))
		})
	}
}

func TestGrid_Equal(t *testing.T) {
	assert.True(t, MustGrid("ab", "cd").Equal(MustGrid("ab", "cd")))
	assert.False(t, MustGrid("ab", "cd").Equal(MustGrid("ab", "ce")))
	assert.False(t, MustGrid("a").Equal(MustGrid("ab", "cd")))
	assert.False(t, MustGrid("a").Equal(nil))
}
