package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JonMunkholm/AdsExport/internal/core"
	"github.com/JonMunkholm/AdsExport/internal/history"
)

// ColumnsResponse lists the editor header.
type ColumnsResponse struct {
	Count   int      `json:"count"`
	Columns []string `json:"columns"`
}

// HistoryResponse wraps recent exports.
type HistoryResponse struct {
	Exports []history.Entry `json:"exports"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]string{"status": "ok"})
}

// handleColumns returns the editor columns in order.
func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	cols := s.service.Columns()
	s.writeJSON(w, r, ColumnsResponse{Count: len(cols), Columns: cols})
}

// handleExport renders a canonical campaign as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	c, err := core.DecodeCampaign(body)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	exp, err := s.service.Export(r.Context(), c, history.SourceCanonical)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.writeExport(w, r, exp)
}

// handleExportLegacy adapts a legacy payload and renders it as a CSV download.
func (s *Server) handleExportLegacy(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	exp, err := s.service.ExportLegacy(r.Context(), body)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.writeExport(w, r, exp)
}

// handleExportStatus returns the current state of the export limiter.
func (s *Server) handleExportStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.service.LimiterStatus())
}

// handleValidate runs the semantic checks on a canonical campaign.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	c, err := core.DecodeCampaign(body)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, r, s.service.Validate(c))
}

// handleValidateLegacy adapts a legacy payload and runs the semantic checks.
func (s *Server) handleValidateLegacy(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	result, err := s.service.ValidateLegacy(body)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.writeJSON(w, r, result)
}

// handleValidateCSV checks a rendered file against the editor layout.
func (s *Server) handleValidateCSV(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.writeJSON(w, r, s.service.ValidateCSV(bytes.NewReader(body)))
}

// handleStats counts what an export of the campaign would contain.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	c, err := core.DecodeCampaign(body)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, r, s.service.Summarize(c))
}

// handleHistory lists recent exports, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", history.DefaultRecentLimit)

	entries, err := s.service.History(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.writeJSON(w, r, HistoryResponse{Exports: entries})
}

// handleHistoryEntry returns one recorded export.
func (s *Server) handleHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "exportID")
	if _, err := uuid.Parse(id); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid export id %q: %w", id, err), http.StatusBadRequest)
		return
	}

	entry, err := s.service.HistoryEntry(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	s.writeJSON(w, r, entry)
}
