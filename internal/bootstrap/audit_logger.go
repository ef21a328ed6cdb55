package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that should outlive request logs:
// server lifecycle and roster changes read back from the event topic.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
