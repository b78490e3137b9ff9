package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raahi/internal/models/agent_models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(30*time.Minute, time.Minute)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "conv_1")
	require.NoError(t, err)
	assert.False(t, ok)

	conversation := agent_models.NewConversationContext("conv_1")
	require.NoError(t, store.Put(ctx, "conv_1", conversation))

	got, ok, err := store.Get(ctx, "conv_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "conv_1", got.ConversationID)

	require.NoError(t, store.Delete(ctx, "conv_1"))
	_, ok, err = store.Get(ctx, "conv_1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreCleanup(t *testing.T) {
	timeout := 30 * time.Minute
	store := NewMemoryStore(timeout, time.Minute)
	ctx := context.Background()
	now := time.Now()

	live := agent_models.NewConversationContext("live")
	live.Timestamp = now.Add(-timeout + time.Minute)
	require.NoError(t, store.Put(ctx, "live", live))

	idle := agent_models.NewConversationContext("idle")
	idle.Timestamp = now.Add(-timeout - time.Minute)
	require.NoError(t, store.Put(ctx, "idle", idle))

	assert.Equal(t, 1, store.Cleanup(now))
	assert.Equal(t, 1, store.Len())

	_, ok, err := store.Get(ctx, "live")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = store.Get(ctx, "idle")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreStopIsIdempotent(t *testing.T) {
	store := NewMemoryStore(30*time.Minute, time.Millisecond)
	store.Start()
	store.Stop()
	store.Stop()
}
