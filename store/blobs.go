package store

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	// MaxFileSize caps a single uploaded binary at 10 GiB.
	MaxFileSize = int64(10) << 30
	// MaxBatchFiles caps one upload call at 10 binaries.
	MaxBatchFiles = 10
)

// ErrTooLarge is returned for uploads over MaxFileSize; callers report it as
// a client error.
var ErrTooLarge = errors.New("file exceeds maximum size of 10 GB")

// Blobs stores uploaded binaries on disk, one file per upload.
type Blobs struct {
	dir string
}

// NewBlobs creates the blob store rooted at dir, creating it if needed.
func NewBlobs(dir string) (*Blobs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Blobs{dir: dir}, nil
}

// SavedBlob describes a persisted binary.
type SavedBlob struct {
	// Path is the absolute location on disk.
	Path string
	// Filename is the generated name within the upload dir.
	Filename string
	// Size is the byte count actually written.
	Size int64
}

// Save writes one uploaded binary under a collision-resistant name
// (epoch milliseconds plus a random token, original extension preserved).
// Binaries over MaxFileSize are rejected before anything touches disk.
func (b *Blobs) Save(fh *multipart.FileHeader) (SavedBlob, error) {
	if fh.Size > MaxFileSize {
		return SavedBlob{}, fmt.Errorf("%s: %w", fh.Filename, ErrTooLarge)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), shortuuid.New(), filepath.Ext(fh.Filename))
	path := filepath.Join(b.dir, name)

	src, err := fh.Open()
	if err != nil {
		return SavedBlob{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return SavedBlob{}, fmt.Errorf("create blob %s: %w", name, err)
	}

	size, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		os.Remove(path)
		return SavedBlob{}, fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return SavedBlob{}, fmt.Errorf("close blob %s: %w", name, err)
	}

	return SavedBlob{Path: path, Filename: name, Size: size}, nil
}

// Delete removes a blob by its stored path. A blob that is already gone is
// not an error.
func (b *Blobs) Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", path, err)
	}
	return nil
}

// Dir returns the upload directory.
func (b *Blobs) Dir() string {
	return b.dir
}
