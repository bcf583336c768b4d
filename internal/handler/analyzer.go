package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/report"
	"github.com/vaultpass/passcheck/internal/service"
)

// AnalyzerHandler handles HTTP requests for password analysis.
type AnalyzerHandler struct {
	service *service.AnalyzerService
	now     func() time.Time
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc, now: time.Now}
}

// HandleAnalyze handles POST /api/v1/analyze requests. An empty password
// yields 204 No Content: there is nothing to display.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Analyze(req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPassword) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleBreach handles POST /api/v1/breach requests.
func (h *AnalyzerHandler) HandleBreach(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.CheckBreach(req))
}

// HandleCompare handles POST /api/v1/compare requests.
func (h *AnalyzerHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req model.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Compare(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompareCount), errors.Is(err, service.ErrEmptyPassword):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleReport handles POST /api/v1/report requests and returns the text
// report as a file download.
func (h *AnalyzerHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	now := h.now()
	var buf bytes.Buffer
	if err := h.service.Report(&buf, req, now, report.Options{}); err != nil {
		if errors.Is(err, service.ErrEmptyPassword) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		slog.Error("rendering report failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(now)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
