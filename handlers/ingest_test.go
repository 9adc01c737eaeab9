package handlers

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adhithya/nexushub-backend/models"
	"github.com/adhithya/nexushub-backend/store"
)

func ingestFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["files"][0]
}

func TestIngestAbortKeepsEarlierCommits(t *testing.T) {
	records, err := store.NewRecords(filepath.Join(t.TempDir(), "files.json"))
	require.NoError(t, err)
	blobs, err := store.NewBlobs(t.TempDir())
	require.NoError(t, err)
	h := New(records, blobs, "http://localhost:3001")

	meta := models.Metadata{Title: "Batch", Visibility: "Public", Tags: []string{}}

	first, err := h.ingest(ingestFileHeader(t, "ok.txt", []byte("fine")), meta)
	require.NoError(t, err)

	// the second binary of the batch trips the size ceiling
	huge := &multipart.FileHeader{Filename: "huge.bin", Size: store.MaxFileSize + 1}
	_, err = h.ingest(huge, meta)
	require.ErrorIs(t, err, store.ErrTooLarge)

	// nothing rolled back: the first record and its blob survive
	kept, err := records.GetByID(first.ID)
	require.NoError(t, err)
	require.Equal(t, first, kept)
	_, err = os.Stat(first.Path)
	require.NoError(t, err)
	require.Len(t, records.LoadAll(), 1)
}
