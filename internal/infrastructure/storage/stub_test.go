package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubAttachmentStore(t *testing.T) {
	store := NewStubAttachmentStore()
	ctx := context.Background()

	t.Run("presigns download URLs", func(t *testing.T) {
		url, err := store.PresignGet(ctx, "deliveries/IBD-00001/note.pdf")
		require.NoError(t, err)
		assert.Equal(t, "https://storage.invalid/download/deliveries/IBD-00001/note.pdf", url)
	})

	t.Run("presigns upload URLs", func(t *testing.T) {
		url, err := store.PresignPut(ctx, "deliveries/IBD-00001/note.pdf", "application/pdf")
		require.NoError(t, err)
		assert.Equal(t, "https://storage.invalid/upload/deliveries/IBD-00001/note.pdf", url)
	})

	t.Run("rejects empty keys", func(t *testing.T) {
		_, err := store.PresignGet(ctx, "")
		assert.Error(t, err)

		_, err = store.PresignPut(ctx, "", "")
		assert.Error(t, err)
	})
}
