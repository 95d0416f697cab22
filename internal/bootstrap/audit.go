package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that must survive log scraping,
// e.g. shutdowns and scheduled batch runs.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
