package entity

import (
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	MB = 1 << 20

	TechPublicationFileLimit  int64 = 50 * MB
	SMSReportTotalLimit       int64 = 250 * MB
	FlightRecordFileLimit     int64 = 25 * MB
	CorrectiveActionFileLimit int64 = 25 * MB
)

type Attachment struct {
	ID           uuid.UUID     `json:"id"`
	CompanyID    uuid.UUID     `json:"companyId"`
	ResourceType ResourceKind  `json:"resourceType"`
	ParentID     uuid.UUID     `json:"parentId"`
	FileName     string        `json:"fileName"`
	FileKey      string        `json:"fileKey"`
	FileSize     int64         `json:"fileSize"`
	FileType     string        `json:"fileType"`
	UploadedBy   uuid.NullUUID `json:"uploadedBy"`
	CreatedAt    time.Time     `json:"createdAt"`
	URL          string        `json:"url,omitempty"`
}

// FileUpload is a file received from the client, not yet stored.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type FileDeleteResult struct {
	FileKey string `json:"fileKey"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type DeleteResult struct {
	ID    uuid.UUID          `json:"id"`
	Files []FileDeleteResult `json:"files"`
}

type Download struct {
	FileName    string
	ContentType string
	Body        []byte
}
