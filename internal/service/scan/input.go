package scan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
)

// IngestInput carries the data for storing a new scan.
type IngestInput struct {
	URL  string
	Data json.RawMessage
}

// Validate checks the ingest input against business rules.
func (i *IngestInput) Validate(maxPayloadBytes int64) error {
	var fieldErrors []domain.FieldError

	if strings.TrimSpace(i.URL) == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "url",
			Message: "url is required",
		})
	}
	if maxPayloadBytes > 0 && int64(len(i.Data)) > maxPayloadBytes {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "data",
			Message: fmt.Sprintf("payload exceeds %d bytes", maxPayloadBytes),
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationError(fieldErrors...)
	}
	return nil
}

// ListInput carries the filters for listing scans.
type ListInput struct {
	FolderID *uuid.UUID
	Limit    int
	Offset   int
}

// Validate checks the list input against business rules.
func (i *ListInput) Validate() error {
	var fieldErrors []domain.FieldError

	if i.Limit < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}
	if i.Offset < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "offset",
			Message: "offset must not be negative",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationError(fieldErrors...)
	}
	return nil
}
