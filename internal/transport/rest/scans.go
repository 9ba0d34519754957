package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/internal/seo"
	"github.com/element-hunter/backend/internal/service/scan"
)

// scanService defines the minimal interface needed by ScanHandler.
type scanService interface {
	Ingest(ctx context.Context, input scan.IngestInput) (*domain.Scan, error)
	List(ctx context.Context, input scan.ListInput) ([]scan.Summary, error)
	Get(ctx context.Context, scanID uuid.UUID) (*scan.Report, error)
}

// ScanHandler serves scan REST endpoints.
type ScanHandler struct {
	svc scanService
	log *slog.Logger
}

// NewScanHandler creates a ScanHandler.
func NewScanHandler(svc scanService, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{svc: svc, log: logger.With("handler", "scan")}
}

type scanSummaryResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type scanFullResponse struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	CreatedAt time.Time       `json:"createdAt"`
	Data      json.RawMessage `json:"data"`
	Score     int             `json:"score"`
	Issues    int             `json:"issues"`
}

type scanReportResponse struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	CreatedAt time.Time       `json:"createdAt"`
	Data      json.RawMessage `json:"data"`
	Normal    seo.Data        `json:"normalized"`
	Score     int             `json:"score"`
	Issues    int             `json:"issues"`
}

// Ingest handles POST /api/seo. The extension posts one flat JSON object;
// the url field is lifted out and the remainder is stored as the scan payload.
func (h *ScanHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var url string
	if raw, ok := body["url"]; ok {
		json.Unmarshal(raw, &url) //nolint:errcheck
		delete(body, "url")
	}

	data, err := json.Marshal(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Ingest(r.Context(), scan.IngestInput{URL: url, Data: data})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, scanSummaryResponse{
		ID:        created.ID.String(),
		URL:       created.URL,
		CreatedAt: created.CreatedAt,
	})
}

// ListFull handles GET /api/seo: the user's scans with payloads and derived
// score and issue counts, newest first.
func (h *ScanHandler) ListFull(w http.ResponseWriter, r *http.Request) {
	input, ok := listInputFromQuery(w, r)
	if !ok {
		return
	}

	summaries, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]scanFullResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, scanFullResponse{
			ID:        s.Scan.ID.String(),
			URL:       s.Scan.URL,
			CreatedAt: s.Scan.CreatedAt,
			Data:      s.Scan.Data,
			Score:     s.Score,
			Issues:    s.Issues,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// List handles GET /api/seo/scans: light summaries, newest first, with an
// optional ?folder= membership filter.
func (h *ScanHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := listInputFromQuery(w, r)
	if !ok {
		return
	}

	summaries, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]scanSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, scanSummaryResponse{
			ID:        s.Scan.ID.String(),
			URL:       s.Scan.URL,
			CreatedAt: s.Scan.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/seo/scans/{id}: the full report for one scan.
func (h *ScanHandler) Get(w http.ResponseWriter, r *http.Request) {
	scanID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scan id")
		return
	}

	report, err := h.svc.Get(r.Context(), scanID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scanReportResponse{
		ID:        report.Scan.ID.String(),
		URL:       report.Scan.URL,
		CreatedAt: report.Scan.CreatedAt,
		Data:      report.Scan.Data,
		Normal:    report.Data,
		Score:     report.Score,
		Issues:    report.Issues,
	})
}

// listInputFromQuery parses ?folder=, ?limit= and ?offset=. Reports a 400 and
// returns ok=false on malformed values.
func listInputFromQuery(w http.ResponseWriter, r *http.Request) (scan.ListInput, bool) {
	var input scan.ListInput

	if v := r.URL.Query().Get("folder"); v != "" {
		folderID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid folder id")
			return input, false
		}
		input.FolderID = &folderID
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return input, false
		}
		input.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return input, false
		}
		input.Offset = n
	}

	return input, true
}

func (h *ScanHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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
