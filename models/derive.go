package models

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

var fileTypes = map[string]string{
	"pdf":  "pdf",
	"doc":  "doc",
	"docx": "doc",
	"jpg":  "img",
	"jpeg": "img",
	"png":  "img",
	"gif":  "img",
	"mp4":  "mov",
	"mov":  "mov",
	"avi":  "mov",
	"xls":  "xls",
	"xlsx": "xls",
	"csv":  "xls",
	"html": "code",
	"htm":  "code",
	"css":  "code",
	"js":   "code",
	"json": "code",
	"psd":  "psd",
}

// FileExtension returns the lower-cased extension without the dot.
func FileExtension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// FileType maps a filename to its coarse category used for icon selection.
// Unknown extensions fall back to "file".
func FileType(filename string) string {
	if t, ok := fileTypes[FileExtension(filename)]; ok {
		return t
	}
	return "file"
}

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb"}

// FormatFileSize renders a byte count as a lower-cased human string with
// binary (1024) units and two decimals, e.g. "2.44 mb".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 b"
	}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	// %g-style trimming would drop the fixed two decimals the UI expects,
	// but whole byte counts print bare ("5 b", not "5.00 b").
	if i == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[0])
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[i])
}

// FormatDate renders the display form DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// DateColor buckets a record by age: under a week green, under a month
// orange, anything older red. Age is whole elapsed days, truncated.
func DateColor(uploadDate, now time.Time) string {
	days := now.Sub(uploadDate).Milliseconds() / 86400000
	switch {
	case days < 7:
		return "green"
	case days < 30:
		return "orange"
	default:
		return "red"
	}
}

// SplitTags parses the comma-separated tags field. Empty input yields an
// empty list; otherwise each piece is trimmed and kept, so a trailing comma
// produces a trailing empty tag.
func SplitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// NewProjectID generates the human-facing "#NNNNNN" identifier. Collisions
// across records are accepted.
func NewProjectID() string {
	return fmt.Sprintf("#%06d", 100000+rand.Intn(900000))
}
