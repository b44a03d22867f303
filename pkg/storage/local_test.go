package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/media")

	url, err := store.Save(context.Background(), "sermons/audio", "talk.mp3",
		strings.NewReader("audio-bytes"))
	require.NoError(t, err)
	require.Equal(t, "/media/sermons/audio/talk.mp3", url)

	data, err := os.ReadFile(filepath.Join(dir, "sermons", "audio", "talk.mp3"))
	require.NoError(t, err)
	require.Equal(t, "audio-bytes", string(data))
}
