package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// BlobStore saves binary objects and returns a retrievable URL.
type BlobStore interface {
	Save(name string, data []byte) (string, error)
}

// LocalStore writes objects to a directory served as static files.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return s.baseURL + "/" + name, nil
}

// AllowedExtension reports whether the filename has an accepted image
// extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ObjectName builds a collision-free object name, keeping the upload time
// visible in the name the way the original bucket layout did.
func ObjectName(ext string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), strings.ToLower(ext))
}
