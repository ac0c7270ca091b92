package uploads

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1024)
	require.NoError(t, err)

	url, err := s.Save(fileHeader(t, "Me.PNG", []byte("png-bytes")), KindImage)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/images/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	onDisk := filepath.Join(dir, "images", filepath.Base(url))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	require.NoError(t, s.Delete(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// 再删一次也没关系
	assert.NoError(t, s.Delete(url))
}

func TestSaveUniqueNames(t *testing.T) {
	s, err := New(t.TempDir(), 1024)
	require.NoError(t, err)

	first, err := s.Save(fileHeader(t, "cv.pdf", []byte("%PDF")), KindDocument)
	require.NoError(t, err)
	second, err := s.Save(fileHeader(t, "cv.pdf", []byte("%PDF")), KindDocument)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveRejectsWrongType(t *testing.T) {
	s, err := New(t.TempDir(), 1024)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "resume.pdf", []byte("%PDF")), KindImage)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = s.Save(fileHeader(t, "photo.jpg", []byte("jpg")), KindDocument)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = s.Save(fileHeader(t, "noext", []byte("?")), KindImage)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestSaveRejectsLargeFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 8)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "big.jpg", bytes.Repeat([]byte("x"), 32)), KindImage)
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(filepath.Join(dir, "images"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteIgnoresForeignPaths(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1024)
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	assert.NoError(t, s.Delete("https://images.example.com/photo.jpg"))
	assert.NoError(t, s.Delete(""))
	assert.NoError(t, s.Delete("/uploads/../../"+filepath.Base(outside)))

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestDeleteKeepsDirectories(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1024)
	require.NoError(t, err)

	for _, url := range []string{"/uploads/", "/uploads/images", "/uploads/images/", "/uploads/other/x.png"} {
		assert.NoError(t, s.Delete(url), url)
	}

	_, err = os.Stat(filepath.Join(dir, "images"))
	assert.NoError(t, err)
}
