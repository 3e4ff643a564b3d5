package imagestore_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sneakerhub/pkg/imagestore"

	"github.com/stretchr/testify/assert"
)

// uploadHeader builds a multipart.FileHeader the way gin hands one to the
// admin product handlers.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestSave(t *testing.T) {
	store, err := imagestore.New(t.TempDir())
	assert.NoError(t, err)

	url, err := store.Save(uploadHeader(t, "shoe.png", []byte("png-bytes")))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/image-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := os.ReadFile(filepath.Join(store.Dir(), filepath.Base(url)))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestSaveRejectsNonImages(t *testing.T) {
	store, err := imagestore.New(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Save(uploadHeader(t, "notes.txt", []byte("text")))
	assert.ErrorIs(t, err, imagestore.ErrUnsupportedType)

	entries, err := os.ReadDir(store.Dir())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	store, err := imagestore.New(t.TempDir())
	assert.NoError(t, err)

	url, err := store.Save(uploadHeader(t, "shoe.jpg", []byte("jpg-bytes")))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(store.Dir(), filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	// Removing again, or removing nothing, is fine
	assert.NoError(t, store.Remove(url))
	assert.NoError(t, store.Remove(""))
}
