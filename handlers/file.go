package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adhithya/nexushub-backend/models"
	"github.com/adhithya/nexushub-backend/store"
)

// Handler serves the file API over an explicitly injected record and blob
// store, so tests can run against temp directories.
type Handler struct {
	records *store.Records
	blobs   *store.Blobs
	baseURL string
}

func New(records *store.Records, blobs *store.Blobs, baseURL string) *Handler {
	return &Handler{records: records, blobs: blobs, baseURL: baseURL}
}

// ListFiles returns every record, newest upload first.
func (h *Handler) ListFiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "files": h.records.ListSorted()})
}

// GetFile returns a single record by ID.
func (h *Handler) GetFile(c *gin.Context) {
	file, err := h.records.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "file": file})
}

// UploadFiles ingests a batch of binaries sharing one metadata payload.
// Each binary is written blob-first, then its record is appended, in input
// order. A mid-batch failure aborts the rest without rolling back what
// already committed; the error response carries the committed records.
func (h *Handler) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No files uploaded"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No files uploaded"})
		return
	}
	if len(files) > store.MaxBatchFiles {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Too many files: maximum 10 per upload"})
		return
	}

	meta := models.Metadata{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Visibility:  c.PostForm("visibility"),
		Tags:        models.SplitTags(c.PostForm("tags")),
	}
	if meta.Visibility == "" {
		meta.Visibility = "Private"
	}

	uploaded := make([]models.FileRecord, 0, len(files))
	for _, fh := range files {
		record, err := h.ingest(fh, meta)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrTooLarge) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error(), "files": uploaded})
			return
		}
		uploaded = append(uploaded, record)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Files uploaded successfully",
		"files":   uploaded,
	})
}

// ingest persists one binary and its record. The whole batch shares meta;
// only an empty title falls back to the file's own original name.
func (h *Handler) ingest(fh *multipart.FileHeader, meta models.Metadata) (models.FileRecord, error) {
	blob, err := h.blobs.Save(fh)
	if err != nil {
		return models.FileRecord{}, err
	}

	if meta.Title == "" {
		meta.Title = fh.Filename
	}
	now := time.Now().UTC()
	record := models.FileRecord{
		ID:           uuid.New().String(),
		ProjectID:    models.NewProjectID(),
		Name:         meta.Title,
		OriginalName: fh.Filename,
		Size:         models.FormatFileSize(blob.Size),
		SizeBytes:    blob.Size,
		Date:         models.FormatDate(now),
		UploadDate:   now,
		User:         models.DefaultUser,
		Handle:       models.DefaultHandle,
		Avatar:       models.DefaultAvatar,
		Type:         models.FileType(fh.Filename),
		Extension:    strings.ToUpper(models.FileExtension(fh.Filename)),
		Path:         blob.Path,
		Filename:     blob.Filename,
		URL:          "/uploads/" + blob.Filename,
		Metadata:     &meta,
	}

	// Blob is already on disk; a failed append leaves an orphan blob for
	// the sweep job, never a record without a blob.
	if err := h.records.Append(record); err != nil {
		return models.FileRecord{}, err
	}
	return record, nil
}

// DeleteFile removes a record and cascades to its blob.
func (h *Handler) DeleteFile(c *gin.Context) {
	file, err := h.records.Remove(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if file.Path != "" {
		if err := h.blobs.Delete(file.Path); err != nil {
			log.Printf("Error deleting blob for %s: %v", file.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted successfully"})
}

// ExternalFiles serves the reduced projection for the external grid, keyed
// by project ID rather than record ID.
func (h *Handler) ExternalFiles(c *gin.Context) {
	now := time.Now().UTC()
	files := h.records.ListSorted()
	external := make([]models.ExternalFile, 0, len(files))
	for _, f := range files {
		id := f.ProjectID
		if id == "" {
			id = models.NewProjectID()
		}
		name := f.Name
		if f.Metadata != nil && f.Metadata.Title != "" {
			name = f.Metadata.Title
		}
		external = append(external, models.ExternalFile{
			ID:        id,
			Name:      name,
			Date:      f.Date,
			DateColor: models.DateColor(f.UploadDate, now),
			User:      f.User,
			Avatar:    f.Avatar,
			Ext:       f.Extension,
			FileID:    f.ID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "files": external})
}

// Stats reduces the full record set to counts and byte totals, recomputed
// on every call.
func (h *Handler) Stats(c *gin.Context) {
	var stats models.Stats
	for _, f := range h.records.LoadAll() {
		stats.TotalFiles++
		stats.TotalSize += f.SizeBytes
		if f.Metadata != nil && f.Metadata.Visibility == "Public" {
			stats.PublicFiles++
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
