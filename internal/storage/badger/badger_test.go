package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/storage"
)

func TestStorage_SaveLoad(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, err = s.Load(ctx, "blueprint-storage")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	require.NoError(t, s.Save(ctx, "blueprint-storage", []byte(`{"version":2}`)))
	require.NoError(t, s.Save(ctx, "blueprint-storage", []byte(`{"version":3}`)))

	got, err := s.Load(ctx, "blueprint-storage")
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(got))
}

func TestStorage_OnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "blueprint-storage", []byte("snapshot")))
	require.NoError(t, s.Close())

	reopened, err := New(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "blueprint-storage")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(got))
}
