package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

type Document struct {
	ID          string              `json:"id"`
	Filename    string              `json:"filename"`
	MimeType    string              `json:"mime_type"`
	StoragePath string              `json:"storage_path"`
	FiledPath   string              `json:"filed_path,omitempty"`
	Category    Category            `json:"category,omitempty"`
	Identifier  *NationalIdentifier `json:"identifier,omitempty"`
	Attempts    int                 `json:"attempts,omitempty"`
	Status      DocumentStatus      `json:"status"`
	Error       string              `json:"error,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ClassificationOutcome is the terminal artifact of one document's
// processing. Identifier is nil when no candidate passed its checksum.
// Attempts counts recognition calls actually issued, at most five.
type ClassificationOutcome struct {
	Category   Category            `json:"category"`
	Identifier *NationalIdentifier `json:"identifier,omitempty"`
	Attempts   int                 `json:"attempts"`
}
