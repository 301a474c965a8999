package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExt(t *testing.T) {
	for _, name := range []string{"logo.png", "art.AI", "brief.docx", "pack.zip", "photo.JPEG"} {
		assert.True(t, AllowedExt(name), name)
	}
	for _, name := range []string{"run.exe", "script.sh", "noext", "video.mp4"} {
		assert.False(t, AllowedExt(name), name)
	}
}

func TestDiskStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "artwork.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".pdf"))
	assert.NotEqual(t, "artwork.pdf", ref, "stored name must not leak the original")

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	assert.Equal(t, "/uploads/"+ref, store.URL(ref))

	require.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, ref))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreRejectsUnsupportedType(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "malware.exe", bytes.NewReader([]byte("MZ")))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDiskStoreDeleteMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, store.Delete(context.Background(), "gone.pdf"))
}
