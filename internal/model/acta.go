package model

import "time"

// Notification states of an archived acta.
const (
	NotifyPending = "pending"
	NotifySent    = "sent"
	NotifyFailed  = "failed"
	NotifySkipped = "skipped"
)

// Acta is the archive record of a rendered meeting-minutes PDF.
// Only the rendered bytes' metadata is kept, never the submitted form fields.
type Acta struct {
	ID           string     `json:"id"`
	Filename     string     `json:"filename"`
	StoragePath  string     `json:"storage_path"`
	Size         int64      `json:"size"`
	SHA256       string     `json:"sha256"`
	ContentType  string     `json:"content_type"`
	NotifyStatus string     `json:"notify_status"`
	NotifyReason string     `json:"notify_reason,omitempty"`
	NotifiedAt   *time.Time `json:"notified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
