package models

import (
	"time"
)

// Metadata is the form payload shared by every file of one upload batch.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Visibility  string   `json:"visibility"`
	Tags        []string `json:"tags"`
}

// FileRecord is the durable unit stored in the JSON database, one per
// uploaded binary.
type FileRecord struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName,omitempty"`
	Size         string    `json:"size"`
	SizeBytes    int64     `json:"sizeBytes,omitempty"`
	Date         string    `json:"date"`
	UploadDate   time.Time `json:"uploadDate"`
	User         string    `json:"user"`
	Handle       string    `json:"handle"`
	Type         string    `json:"type"`
	Extension    string    `json:"extension"`
	Avatar       string    `json:"avatar"`
	Path         string    `json:"path,omitempty"`
	Filename     string    `json:"filename,omitempty"`
	URL          string    `json:"url,omitempty"`
	Metadata     *Metadata `json:"metadata,omitempty"`
	IsMock       bool      `json:"isMock,omitempty"`
}

// ExternalFile is the reduced projection served to the external grid.
// The project ID doubles as the public identifier.
type ExternalFile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	DateColor string `json:"dateColor"`
	User      string `json:"user"`
	Avatar    string `json:"avatar"`
	Ext       string `json:"ext"`
	FileID    string `json:"fileId"`
}

// Stats is the aggregate served by /api/stats.
type Stats struct {
	TotalFiles  int   `json:"totalFiles"`
	TotalSize   int64 `json:"totalSize"`
	PublicFiles int   `json:"publicFiles"`
}

// Placeholder uploader identity until a real account system exists.
const (
	DefaultUser   = "Current User"
	DefaultHandle = "user@demo.01"
	DefaultAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// MockFiles seeds an empty store so the dashboard has content before the
// first real upload. Records are flagged isMock and carry no blob.
func MockFiles() []FileRecord {
	return []FileRecord{
		{ID: "mock-1", ProjectID: "#125875", Name: "Design Proposal.pdf", Size: "120 mb", Date: "20-05-2025", UploadDate: mustTime("2025-05-20T10:00:00Z"), User: "Adhithya Sharma", Handle: "adhithya@shama.01", Type: "pdf", Extension: "PDF", Avatar: "https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?w=100", IsMock: true},
		{ID: "mock-2", ProjectID: "#657483", Name: "Final draft.doc", Size: "73.04 mb", Date: "07-03-2025", UploadDate: mustTime("2025-03-07T10:00:00Z"), User: "Dhivya shree", Handle: "yashree.divi@18", Type: "doc", Extension: "DOC", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100", IsMock: true},
		{ID: "mock-3", ProjectID: "#103895", Name: "Collections.jpg", Size: "3.2 gb", Date: "23-03-2025", UploadDate: mustTime("2025-03-23T10:00:00Z"), User: "Pixie Dustin", Handle: "dustin.pix@08", Type: "img", Extension: "JPG", Avatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=100", IsMock: true},
		{ID: "mock-4", ProjectID: "#804857", Name: "Animation.mov", Size: "4.9 gb", Date: "12-03-2025", UploadDate: mustTime("2025-03-12T10:00:00Z"), User: "Hamsy Joe", Handle: "hamsy.joe@015", Type: "mov", Extension: "MOV", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100", IsMock: true},
		{ID: "mock-5", ProjectID: "#547648", Name: "Invoice.excl", Size: "60.31 mb", Date: "30-01-2025", UploadDate: mustTime("2025-01-30T10:00:00Z"), User: "Steve King", Handle: "steve.king@098", Type: "xls", Extension: "XLS", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100", IsMock: true},
		{ID: "mock-6", ProjectID: "#904321", Name: "Landing page.http", Size: "158 kb", Date: "04-01-2025", UploadDate: mustTime("2025-01-04T10:00:00Z"), User: "Joaseph", Handle: "joseph.phin@035", Type: "code", Extension: "HTML", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100", IsMock: true},
	}
}
