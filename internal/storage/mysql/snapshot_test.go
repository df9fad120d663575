package mysql

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/storage"
)

func TestSnapshot_SaveLoad(t *testing.T) {
	ctx := context.Background()
	key := "test-" + uuid.NewString()

	t.Cleanup(func() {
		_, _ = testStorage.db.Exec(`DELETE FROM blueprint_snapshots WHERE snapshot_key = ?`, key)
	})

	_, err := testStorage.Load(ctx, key)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	require.NoError(t, testStorage.Save(ctx, key, []byte(`{"version":2}`)))
	require.NoError(t, testStorage.Save(ctx, key, []byte(`{"version":3}`)))

	got, err := testStorage.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(got))
}
