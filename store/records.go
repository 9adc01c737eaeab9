package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/adhithya/nexushub-backend/models"
)

// ErrNotFound is returned for lookups and deletes of unknown record IDs.
var ErrNotFound = errors.New("file not found")

// document is the on-disk shape of the database file.
type document struct {
	Files []models.FileRecord `json:"files"`
}

// Records persists the file collection as a single JSON document. Every
// mutation reloads the document, rewrites it whole, and holds mu for the
// duration; two concurrent read-modify-writes would otherwise drop one.
type Records struct {
	path string
	mu   sync.Mutex
}

// NewRecords creates the store for the given document path, creating the
// parent directory if needed.
func NewRecords(path string) (*Records, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Records{path: path}, nil
}

// LoadAll returns every record. A missing, empty, or corrupt document reads
// as an empty store; parse errors never reach callers.
func (r *Records) LoadAll() []models.FileRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []models.FileRecord{}
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Files == nil {
		return []models.FileRecord{}
	}
	return doc.Files
}

// SaveAll replaces the entire persisted collection. Unlike reads, write
// failures surface. The document is written to a temp file and renamed over
// the target, so an unlocked concurrent read never sees a half-written file.
func (r *Records) SaveAll(files []models.FileRecord) error {
	data, err := json.MarshalIndent(document{Files: files}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write database: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace database: %w", err)
	}
	return nil
}

// GetByID returns the record with the given ID or ErrNotFound.
func (r *Records) GetByID(id string) (models.FileRecord, error) {
	for _, f := range r.LoadAll() {
		if f.ID == id {
			return f, nil
		}
	}
	return models.FileRecord{}, ErrNotFound
}

// Append adds one record and persists the updated collection.
func (r *Records) Append(file models.FileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.SaveAll(append(r.LoadAll(), file))
}

// Remove deletes the record with the given ID and returns it so the caller
// can cascade-delete its blob. The document is untouched on ErrNotFound.
func (r *Records) Remove(id string) (models.FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	files := r.LoadAll()
	for i, f := range files {
		if f.ID == id {
			if err := r.SaveAll(append(files[:i:i], files[i+1:]...)); err != nil {
				return models.FileRecord{}, err
			}
			return f, nil
		}
	}
	return models.FileRecord{}, ErrNotFound
}

// ListSorted returns all records newest-first by upload date. The sort is
// stable, so ties keep their storage order.
func (r *Records) ListSorted() []models.FileRecord {
	files := r.LoadAll()
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].UploadDate.After(files[j].UploadDate)
	})
	return files
}

// SeedIfEmpty writes the mock example records when the store holds nothing,
// so the dashboard has content before the first upload. A store with any
// records is left alone.
func (r *Records) SeedIfEmpty() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.LoadAll()) > 0 {
		return nil
	}
	return r.SaveAll(models.MockFiles())
}
