package web

// This file contains shared utilities and helper functions used across handlers.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/JonMunkholm/AdsExport/internal/core"
	"github.com/JonMunkholm/AdsExport/internal/logging"
)

// Response headers set on CSV downloads.
const (
	HeaderExportWarnings    = "X-Export-Warnings"
	HeaderExportID          = "X-Export-Id"
	HeaderExportFingerprint = "X-Export-Fingerprint"
	HeaderExportCache       = "X-Export-Cache"
)

var errBodyTooLarge = errors.New("request body too large")

// readBody reads the request body up to the configured limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Export.MaxBodyBytes)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return data, nil
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// writeExport streams a rendered file as an attachment.
func (s *Server) writeExport(w http.ResponseWriter, r *http.Request, exp *core.Export) {
	cacheState := "MISS"
	if exp.Cached {
		cacheState = "HIT"
	}

	h := w.Header()
	h.Set("Content-Type", "text/csv; charset=utf-8")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": exp.Filename}))
	h.Set("Content-Length", strconv.Itoa(len(exp.Data)))
	h.Set(HeaderExportWarnings, strconv.Itoa(len(exp.Warnings())))
	h.Set(HeaderExportID, exp.ID.String())
	h.Set(HeaderExportFingerprint, exp.Fingerprint)
	h.Set(HeaderExportCache, cacheState)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(exp.Data); err != nil {
		logging.Enrich(r.Context(), s.logger).Warn("failed to write export", zap.Error(err))
	}
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Enrich(r.Context(), s.logger).Warn("json encode error", zap.Error(err))
	}
}
