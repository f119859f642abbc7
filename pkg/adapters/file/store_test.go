package file_test

import (
	"context"
	"testing"

	"github.com/avetono/jsonbot/pkg/adapters/file"
	"github.com/avetono/jsonbot/pkg/domain"
	"github.com/avetono/jsonbot/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSessionStoreContract(t, store)
}

func TestFileStore_OverwriteExisting(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "chat", domain.NewSession(domain.ModeMergeCollect)))
	require.NoError(t, store.Save(ctx, "chat", domain.NewSession(domain.ModeSplitPending)))

	sess, err := store.Load(ctx, "chat")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSplitPending, sess.Mode)
}

func TestFileStore_EmptyID(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domain.NewSession(domain.ModeMergeCollect)))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
}

func TestFileStore_ListEmptyDir(t *testing.T) {
	store := file.New(t.TempDir() + "/never-created")

	sessions, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
