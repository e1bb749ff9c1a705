package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ActivityAction string

const (
	ActionCreate           ActivityAction = "CREATE"
	ActionUpdate           ActivityAction = "UPDATE"
	ActionDelete           ActivityAction = "DELETE"
	ActionExport           ActivityAction = "EXPORT"
	ActionLogin            ActivityAction = "LOGIN"
	ActionDownload         ActivityAction = "DOWNLOAD"
	ActionPermissionUpdate ActivityAction = "PERMISSION_UPDATE"
)

var ActivityActions = []string{
	string(ActionCreate),
	string(ActionUpdate),
	string(ActionDelete),
	string(ActionExport),
	string(ActionLogin),
	string(ActionDownload),
	string(ActionPermissionUpdate),
}

type ActivityLogEntry struct {
	ID            uuid.UUID      `json:"id"`
	CompanyID     uuid.UUID      `json:"companyId"`
	UserID        uuid.UUID      `json:"userId"`
	Action        ActivityAction `json:"action"`
	ResourceType  ResourceKind   `json:"resourceType"`
	ResourceID    uuid.NullUUID  `json:"resourceId"`
	ResourceTitle string         `json:"resourceTitle"`
	Metadata      map[string]any `json:"metadata"`
	IPAddress     string         `json:"ipAddress"`
	UserAgent     string         `json:"userAgent"`
	CreatedAt     time.Time      `json:"createdAt"`
}
