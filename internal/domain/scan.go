package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Scan is one page analysis submitted by the browser extension.
// The Data payload is stored verbatim at ingestion time; its shape is NOT
// validated and may match zero, one, or several historical extension versions.
// Scans are immutable after creation.
type Scan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	URL       string
	Data      json.RawMessage
	CreatedAt time.Time
}

// Folder is a user-defined named grouping of scans.
// Folder names are NOT unique per user: two folders with the same name may
// coexist.
type Folder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time

	// Scans holds member scan summaries when the folder is loaded for display.
	Scans []Scan
}
