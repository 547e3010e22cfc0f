package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveKeysByTimestampAndOriginalName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path, err := store.Save(fileHeader(t, "badge.png", []byte("png-bytes")))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^\d+-badge\.png$`), filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestSaveStripsDirectoryFromOriginalName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path, err := store.Save(fileHeader(t, "../../etc/badge.png", []byte("x")))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^\d+-badge\.png$`), filepath.Base(path))
}

func TestSaveCreatesUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewStore(dir)

	_, err := store.Save(fileHeader(t, "badge.png", []byte("x")))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
