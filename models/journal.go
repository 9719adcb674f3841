package models

// Post log entry statuses.
const (
	StatusPublished = "published"
	StatusDryRun    = "dry-run"
)

// PostLogEntry records one publish attempt in the post history log.
// Entries are append-only and ordered by insertion.
type PostLogEntry struct {
	Timestamp string `json:"timestamp"`
	PostID    string `json:"postId"`
	Content   string `json:"content"`
	Status    string `json:"status"`
}

// ErrorLogEntry records a failed scheduled cycle. The agent only writes
// these; they are read by the dashboard collaborator.
type ErrorLogEntry struct {
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
	Stack     string `json:"stack,omitempty"`
}
