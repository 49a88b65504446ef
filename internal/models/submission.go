package models

import (
	"strings"
	"time"
)

type SubmissionStatus string

const (
	StatusNew        SubmissionStatus = "new"
	StatusInProgress SubmissionStatus = "in_progress"
	StatusCompleted  SubmissionStatus = "completed"
)

// statusAliases folds the spellings accumulated across frontend iterations
// into canonical values. Stored records only ever contain canonical values.
var statusAliases = map[string]SubmissionStatus{
	"new":         StatusNew,
	"in_progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"in-progress": StatusInProgress,
	"progress":    StatusInProgress,
	"completed":   StatusCompleted,
	"complete":    StatusCompleted,
	"done":        StatusCompleted,
}

// ParseSubmissionStatus normalizes a client-supplied status string. Unknown
// strings are not coerced; callers reject them.
func ParseSubmissionStatus(s string) (SubmissionStatus, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	return status, ok
}

// UploadRef describes one stored reference image attached to a submission.
type UploadRef struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Size     int64  `json:"size"`
}

type CommissionRequest struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Type      string           `json:"type"`
	Size      string           `json:"size"`
	Brief     string           `json:"brief"`
	Refs      []UploadRef      `json:"refs"`
	Status    SubmissionStatus `json:"status"`
	Notes     string           `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type Enquiry struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Message   string           `json:"message"`
	Refs      []UploadRef      `json:"refs"`
	Status    SubmissionStatus `json:"status"`
	Notes     string           `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
