package entity

type ResourceKind string

const (
	ResourceFlightRecord     ResourceKind = "flight_record"
	ResourceTechPublication  ResourceKind = "technical_publication"
	ResourceSMSReport        ResourceKind = "sms_report"
	ResourceAudit            ResourceKind = "audit"
	ResourceFinding          ResourceKind = "finding"
	ResourceCorrectiveAction ResourceKind = "corrective_action"
	ResourceStockItem        ResourceKind = "stock_item"
	ResourceUserPermission   ResourceKind = "user_permission"
	ResourceReport           ResourceKind = "report"
	ResourceSession          ResourceKind = "session"
	ResourceAttachment       ResourceKind = "attachment"
)

func (k ResourceKind) String() string {
	return string(k)
}

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceFlightRecord, ResourceTechPublication, ResourceSMSReport, ResourceAudit, ResourceFinding,
		ResourceCorrectiveAction, ResourceStockItem, ResourceUserPermission, ResourceReport, ResourceSession,
		ResourceAttachment:
		return true
	}

	return false
}

// Folder is the top level storage prefix for attachments of the resource.
func (k ResourceKind) Folder() string {
	switch k {
	case ResourceFlightRecord:
		return "flight-records"
	case ResourceTechPublication:
		return "technical-publications"
	case ResourceSMSReport:
		return "sms-reports"
	case ResourceCorrectiveAction:
		return "corrective-actions"
	default:
		return "misc"
	}
}

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

var Severities = []string{string(SeverityLow), string(SeverityMedium), string(SeverityHigh), string(SeverityCritical)}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}

	return false
}
