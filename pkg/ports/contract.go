package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractProgram = `
+---+
|$1@|
|   |
|   |
+---+
`

// RunProgramStoreContract runs a suite of tests to verify that a ProgramStore implementation
// adheres to the defined interface contract.
func RunProgramStoreContract(t *testing.T, store ProgramStore) {
	ctx := context.Background()
	name := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, []byte(contractProgram))
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, contractProgram, string(loaded))
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, []byte("first")))
		require.NoError(t, store.Save(ctx, name, []byte("second")))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "second", string(loaded))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrProgramNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, []byte(contractProgram)))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrProgramNotFound, "Load after Delete should return ErrProgramNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-a"
		id2 := name + "-b"
		require.NoError(t, store.Save(ctx, id2, []byte(contractProgram)))
		require.NoError(t, store.Save(ctx, id1, []byte(contractProgram)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsIncreasing(t, names, "List must be sorted")
	})

	t.Run("Names Do Not Clash With Bookkeeping", func(t *testing.T) {
		reserved := []string{"index", "programs", "tmp-draft"}
		for _, n := range reserved {
			require.NoError(t, store.Save(ctx, n, []byte(contractProgram)), n)
		}
		defer func() {
			for _, n := range reserved {
				_ = store.Delete(ctx, n)
			}
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Subset(t, names, reserved)

		loaded, err := store.Load(ctx, "index")
		require.NoError(t, err)
		assert.Equal(t, contractProgram, string(loaded))
	})
}

// RunIOPortContract checks that port replays the units it was seeded with and
// then reports domain.ErrEndOfInput, and that written units are observable
// through written().
func RunIOPortContract(t *testing.T, port IOPort, seeded []domain.Unit, written func() []domain.Unit) {
	t.Helper()

	t.Run("Read seeded units", func(t *testing.T) {
		for i, want := range seeded {
			got, err := port.ReadUnit()
			require.NoError(t, err, "unit %d", i)
			assert.Equal(t, want, got, "unit %d", i)
		}
		_, err := port.ReadUnit()
		assert.ErrorIs(t, err, domain.ErrEndOfInput)

		_, err = port.ReadUnit()
		assert.ErrorIs(t, err, domain.ErrEndOfInput, "end of input must be sticky")
	})

	t.Run("Write units", func(t *testing.T) {
		out := []domain.Unit{domain.One, domain.Zero, domain.Zero, domain.One, domain.One, domain.Zero, domain.One, domain.Zero}
		for _, u := range out {
			require.NoError(t, port.WriteUnit(u))
		}
		if f, ok := port.(Flusher); ok {
			require.NoError(t, f.Flush())
		}
		assert.Equal(t, out, written())
	})
}
