package helper

import (
	"fmt"
	"os"
	"path/filepath"
)

// BlobStore menyimpan berkas upload. Implementasi default: disk lokal
// yang dilayani balik lewat /uploads.
type BlobStore interface {
	WriteFile(name string, data []byte) error
}

type DiskBlobStore struct {
	Dir string
}

func NewDiskBlobStore(dir string) *DiskBlobStore {
	// direktori dibuat sekali di awal, bukan per-upload
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Printf("[WARN] gagal membuat direktori upload %s: %v\n", dir, err)
	}
	return &DiskBlobStore{Dir: dir}
}

func (s *DiskBlobStore) WriteFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o644)
}
