package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/storage"
)

func TestStorage_SaveLoad(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Load(ctx, "blueprint-storage")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	blob := []byte(`{"version":3}`)
	require.NoError(t, s.Save(ctx, "blueprint-storage", blob))
	blob[0] = 'x'

	got, err := s.Load(ctx, "blueprint-storage")
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(got))
}
