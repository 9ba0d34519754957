package folder

import (
	"strings"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
)

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateFolderInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFolderInput holds the parameters for deleting a folder.
type DeleteFolderInput struct {
	FolderID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteFolderInput) Validate() error {
	if i.FolderID == uuid.Nil {
		return domain.NewValidationError(domain.FieldError{Field: "folder_id", Message: "required"})
	}
	return nil
}

// AddScansInput holds the parameters for attaching scans to a folder.
type AddScansInput struct {
	FolderID uuid.UUID
	ScanIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddScansInput) Validate() error {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	if len(i.ScanIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "scan_ids", Message: "at least one scan required"})
	}
	if len(i.ScanIDs) > MaxScansPerAdd {
		errs = append(errs, domain.FieldError{Field: "scan_ids", Message: "max 200 scans per request"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveScanInput holds the parameters for detaching a scan from a folder.
type RemoveScanInput struct {
	FolderID uuid.UUID
	ScanID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveScanInput) Validate() error {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	if i.ScanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "scan_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
