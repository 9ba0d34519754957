package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/internal/service/folder"
)

// folderService defines the minimal interface needed by FolderHandler.
type folderService interface {
	CreateFolder(ctx context.Context, input folder.CreateFolderInput) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]*domain.Folder, error)
	DeleteFolder(ctx context.Context, input folder.DeleteFolderInput) error
	AddScans(ctx context.Context, input folder.AddScansInput) (*folder.AddScansResult, error)
	RemoveScan(ctx context.Context, input folder.RemoveScanInput) error
}

// FolderHandler serves folder REST endpoints.
type FolderHandler struct {
	svc folderService
	log *slog.Logger
}

// NewFolderHandler creates a FolderHandler.
func NewFolderHandler(svc folderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{svc: svc, log: logger.With("handler", "folder")}
}

type createFolderRequest struct {
	Name string `json:"name"`
}

type folderResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	CreatedAt time.Time             `json:"createdAt"`
	Scans     []scanSummaryResponse `json:"scans"`
}

type addScansRequest struct {
	FolderID string   `json:"folderId"`
	ScanIDs  []string `json:"scanIds"`
	ScanID   string   `json:"scanId"`
}

type addScansResponse struct {
	Attached int `json:"attached"`
	Skipped  int `json:"skipped"`
}

type removeScanRequest struct {
	FolderID string `json:"folderId"`
	ScanID   string `json:"scanId"`
}

// Create handles POST /api/seo/folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateFolder(r.Context(), folder.CreateFolderInput{Name: req.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFolderResponse(created))
}

// List handles GET /api/seo/folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}

	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/seo/folders/{folderId}.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID, err := uuid.Parse(r.PathValue("folderId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	if err := h.svc.DeleteFolder(r.Context(), folder.DeleteFolderInput{FolderID: folderID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddScans handles POST /api/seo/folders/add-scan. Accepts either a JSON body
// with scanIds (or a single scanId) or legacy form-encoded folderId+scanId.
func (h *FolderHandler) AddScans(w http.ResponseWriter, r *http.Request) {
	folderID, scanIDs, ok := h.parseMembership(w, r, true)
	if !ok {
		return
	}

	result, err := h.svc.AddScans(r.Context(), folder.AddScansInput{
		FolderID: folderID,
		ScanIDs:  scanIDs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, addScansResponse{
		Attached: result.Attached,
		Skipped:  result.Skipped,
	})
}

// RemoveScan handles POST /api/seo/folders/remove-scan. Accepts JSON or
// form-encoded folderId+scanId.
func (h *FolderHandler) RemoveScan(w http.ResponseWriter, r *http.Request) {
	folderID, scanIDs, ok := h.parseMembership(w, r, false)
	if !ok {
		return
	}

	err := h.svc.RemoveScan(r.Context(), folder.RemoveScanInput{
		FolderID: folderID,
		ScanID:   scanIDs[0],
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseMembership extracts folderId and scan ids from either a JSON or a
// form-encoded membership request. When multi is false exactly one scan id is
// expected. Reports a 400 and returns ok=false on malformed input.
func (h *FolderHandler) parseMembership(w http.ResponseWriter, r *http.Request, multi bool) (uuid.UUID, []uuid.UUID, bool) {
	var rawFolder string
	var rawScans []string

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var req addScansRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return uuid.Nil, nil, false
		}
		rawFolder = req.FolderID
		if multi && len(req.ScanIDs) > 0 {
			rawScans = req.ScanIDs
		} else if req.ScanID != "" {
			rawScans = []string{req.ScanID}
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return uuid.Nil, nil, false
		}
		rawFolder = r.PostForm.Get("folderId")
		if v := r.PostForm.Get("scanId"); v != "" {
			rawScans = []string{v}
		}
	}

	if rawFolder == "" || len(rawScans) == 0 {
		writeError(w, http.StatusBadRequest, "folderId and scanId are required")
		return uuid.Nil, nil, false
	}

	folderID, err := uuid.Parse(rawFolder)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return uuid.Nil, nil, false
	}

	scanIDs := make([]uuid.UUID, 0, len(rawScans))
	for _, raw := range rawScans {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid scan id")
			return uuid.Nil, nil, false
		}
		scanIDs = append(scanIDs, id)
	}

	return folderID, scanIDs, true
}

func (h *FolderHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toFolderResponse(f *domain.Folder) folderResponse {
	scans := make([]scanSummaryResponse, 0, len(f.Scans))
	for _, s := range f.Scans {
		scans = append(scans, scanSummaryResponse{
			ID:        s.ID.String(),
			URL:       s.URL,
			CreatedAt: s.CreatedAt,
		})
	}

	return folderResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		Scans:     scans,
	}
}
