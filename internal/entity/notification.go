package entity

import "github.com/gofrs/uuid/v5"

const (
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
)

type Notification struct {
	CompanyID   uuid.UUID
	Recipients  []string
	Subject     string
	Body        string
	ContentType string
}
