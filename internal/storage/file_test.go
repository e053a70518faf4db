package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVSetGet(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := kv.GetItem(ctx, "oshigoto-tickets")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.SetItem(ctx, "oshigoto-tickets", `[{"id":"x"}]`))

	v, ok, err := kv.GetItem(ctx, "oshigoto-tickets")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, v)
}

func TestFileKVOverwrite(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.SetItem(ctx, "k", "first"))
	require.NoError(t, kv.SetItem(ctx, "k", "second"))

	v, ok, err := kv.GetItem(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}
