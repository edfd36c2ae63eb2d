package nhohnhehr_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/pkg/adapters/memory"
	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioB = `
+--+
|$@|
|..|
+--+
`

const scenarioD = `
+---+
|$?@|
|   |
|   |
+---+
`

func TestNew_LoadErrors(t *testing.T) {
	t.Run("No room", func(t *testing.T) {
		_, err := nhohnhehr.New([]byte("no border here"), memory.NewTape())
		assert.ErrorIs(t, err, domain.ErrNoRoom)
	})

	t.Run("Missing start marker", func(t *testing.T) {
		_, err := nhohnhehr.New([]byte("+--+\n|..|\n|.@|\n+--+\n"), memory.NewTape())
		assert.ErrorIs(t, err, domain.ErrMissingStartMarker)
	})

	t.Run("Missing program", func(t *testing.T) {
		_, err := nhohnhehr.Load(context.Background(), memory.NewStore(nil), "ghost", memory.NewTape())
		assert.ErrorIs(t, err, domain.ErrProgramNotFound)
	})
}

func TestEngine_Facade(t *testing.T) {
	eng, err := nhohnhehr.New([]byte(scenarioB), memory.NewTape(), nhohnhehr.WithName("minimal"))
	require.NoError(t, err)
	assert.Equal(t, "minimal", eng.Name)
	assert.Equal(t, 2, eng.Grid().Size())

	require.NoError(t, eng.Step(context.Background()))
	assert.False(t, eng.State().Halted)
	require.NoError(t, eng.Run(context.Background()))
	assert.True(t, eng.State().Halted)
	assert.Equal(t, 1, eng.Rooms())

	origin, ok := eng.Room(domain.Point{})
	require.True(t, ok)
	assert.True(t, origin.Equal(eng.Grid()))
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Byte framed input turns", func(t *testing.T) {
		res, err := nhohnhehr.Execute(ctx, []byte(scenarioD), stream.ModeBytes, []byte{0x80})
		require.NoError(t, err)
		assert.True(t, res.Halted)
		assert.Empty(t, res.Output)
		assert.Equal(t, uint64(6), res.State.Steps)
	})

	t.Run("Byte framed output", func(t *testing.T) {
		// Writes 'A' (01000001) and halts.
		border := "+" + strings.Repeat("-", 10) + "+\n"
		src := border + "|$01000001@|\n" + strings.Repeat("|"+strings.Repeat(" ", 10)+"|\n", 9) + border
		res, err := nhohnhehr.Execute(ctx, []byte(src), stream.ModeBytes, nil)
		require.NoError(t, err)
		assert.Equal(t, "A", string(res.Output))
	})

	t.Run("Step limit returns partial result", func(t *testing.T) {
		src := "+--+\n|$1|\n|..|\n+--+\n"
		res, err := nhohnhehr.Execute(ctx, []byte(src), stream.ModeBits, nil, nhohnhehr.WithMaxSteps(7))
		assert.ErrorIs(t, err, domain.ErrStepLimit)
		require.NotNil(t, res)
		assert.False(t, res.Halted)
		assert.Equal(t, "111", string(res.Output))
	})

	t.Run("Invalid mode", func(t *testing.T) {
		_, err := nhohnhehr.Execute(ctx, []byte(scenarioB), "nibbles", nil)
		assert.ErrorIs(t, err, stream.ErrInvalidMode)
	})

	t.Run("Parse failure", func(t *testing.T) {
		res, err := nhohnhehr.Execute(ctx, []byte("+--+ +--+\n|$@| |$@|\n|  | |  |\n+--+ +--+\n"), stream.ModeBits, nil)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrMultipleRooms)
	})
}
