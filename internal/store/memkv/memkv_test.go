package memkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notepad/internal/store"
)

var _ store.KV = (*Store)(nil)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Load(ctx, "textSize")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "textSize", "20"))
	require.NoError(t, s.Save(ctx, "textSize", "24"))

	v, ok, err := s.Load(ctx, "textSize")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "24", v)
}
