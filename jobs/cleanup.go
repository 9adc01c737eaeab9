package jobs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adhithya/nexushub-backend/store"
)

// Blobs are written before their record commits, so a crash in between
// leaves a blob no record references. The sweep only touches blobs older
// than this, so in-flight uploads are never collected.
const orphanAge = 1 * time.Hour

// StartOrphanSweep removes unreferenced blobs from the upload dir once an
// hour.
func StartOrphanSweep(records *store.Records, blobs *store.Blobs) {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			SweepOrphans(records, blobs)
		}
	}()
}

// SweepOrphans deletes every blob not referenced by any record and older
// than orphanAge.
func SweepOrphans(records *store.Records, blobs *store.Blobs) {
	entries, err := os.ReadDir(blobs.Dir())
	if err != nil {
		log.Printf("Error reading upload dir: %v", err)
		return
	}

	referenced := make(map[string]bool)
	for _, f := range records.LoadAll() {
		if f.Filename != "" {
			referenced[f.Filename] = true
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < orphanAge {
			continue
		}
		path := filepath.Join(blobs.Dir(), entry.Name())
		if err := blobs.Delete(path); err != nil {
			log.Printf("Error deleting orphan blob %s: %v", entry.Name(), err)
			continue
		}
		log.Printf("Deleted orphan blob: %s", entry.Name())
	}
}
