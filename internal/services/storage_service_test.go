// internal/services/storage_service_test.go
package services

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrikom/agrimarket-backend/internal/config"
)

func newLocalStorage(t *testing.T) *StorageService {
	svc, err := NewStorageService(&config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: "8080"},
	})
	require.NoError(t, err)
	svc.localDir = t.TempDir()
	return svc
}

func TestGenerateFileNameKeepsExtensionAndFolder(t *testing.T) {
	svc := newLocalStorage(t)

	name := svc.generateFileName("photo.JPG", "products")
	assert.True(t, strings.HasPrefix(name, "products/"))
	assert.True(t, strings.HasSuffix(name, ".JPG"))

	other := svc.generateFileName("photo.JPG", "products")
	assert.NotEqual(t, name, other)
}

func TestUploadToLocalWritesFile(t *testing.T) {
	svc := newLocalStorage(t)

	res, err := svc.uploadToLocal([]byte("fake image bytes"), "products/a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, int64(16), res.Size)
	assert.Equal(t, "http://localhost:8080/uploads/products/a.jpg", res.URL)

	data, err := os.ReadFile(filepath.Join(svc.localDir, "products", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestUploadFileRejectsOversizeAndDisallowedTypes(t *testing.T) {
	svc := newLocalStorage(t)
	opts := svc.GetDefaultUploadOptions("avatars")

	_, err := svc.UploadFile(nil, &multipart.FileHeader{Filename: "a.jpg", Size: opts.MaxSize + 1}, opts)
	assert.Error(t, err)

	_, err = svc.UploadFile(nil, &multipart.FileHeader{Filename: "a.exe", Size: 100}, opts)
	assert.Error(t, err)
}
