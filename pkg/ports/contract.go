package ports

import (
	"context"
	"testing"
	"time"

	"github.com/avetono/jsonbot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a
// SessionStore implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		// 1. Create a session mid-merge, key set included
		sess := domain.NewSession(domain.ModeMergeCollect)
		list, err := domain.DecodeList([]byte(`[1, "two", {"b": 2, "a": 1}]`))
		require.NoError(t, err)
		for _, v := range list {
			if sess.Seen.Add(domain.NormalizeKey(v)) {
				sess.Items = append(sess.Items, v)
			}
		}

		// 2. Save
		err = store.Save(ctx, sessionID, sess)
		require.NoError(t, err, "Save should not return error")

		// 3. Load
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.ModeMergeCollect, loaded.Mode)
		require.Len(t, loaded.Items, 3)
		assert.Equal(t, 3, loaded.Seen.Len())
		// Key sets must survive the round trip, member order and all.
		assert.True(t, loaded.Seen.Has(domain.NormalizeKey(domain.Value(`{"a":1,"b":2}`))))
	})

	t.Run("Load Isolation", func(t *testing.T) {
		// Mutating a loaded session must not leak into the store.
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Items = append(loaded.Items, domain.Value(`"extra"`))

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, again.Items, 3)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewSession(domain.ModeSubtractMain))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(domain.ModeMergeCollect))
		_ = store.Save(ctx, id2, domain.NewSession(domain.ModeSplitPending))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
