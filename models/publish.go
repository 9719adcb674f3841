package models

// PublishResult is the outcome of one publish call against the LinkedIn API,
// or a synthesized dry-run result when posting is disabled.
type PublishResult struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id"`
	DryRun bool   `json:"dryRun,omitempty"`
}
