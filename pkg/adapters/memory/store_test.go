package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/nhohnhehr/pkg/adapters/memory"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/aretw0/nhohnhehr/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunProgramStoreContract(t, memory.NewStore(nil))
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(map[string]string{"hello": "+--+\n|$@|\n|  |\n+--+\n"})

	src, err := store.Load(ctx, "hello")
	require.NoError(t, err)
	src[0] = 'X'

	again, err := store.Load(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, byte('+'), again[0], "callers must not mutate the stored source")

	assert.Error(t, store.Save(ctx, "", []byte("x")))
}

func TestTape_Contract(t *testing.T) {
	tape := memory.NewTape(domain.One, domain.Zero, domain.One)
	ports.RunIOPortContract(t, tape, []domain.Unit{domain.One, domain.Zero, domain.One}, tape.Output)
}

func TestTape_FromBits(t *testing.T) {
	tape := memory.NewTapeFromBits("1 0\n1x")
	assert.Equal(t, 3, tape.Remaining())

	u, err := tape.ReadUnit()
	require.NoError(t, err)
	assert.Equal(t, domain.One, u)

	require.NoError(t, tape.WriteUnit(domain.One))
	require.NoError(t, tape.WriteUnit(domain.Zero))
	assert.Equal(t, "10", tape.Bits())
}
