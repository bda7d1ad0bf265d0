package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JonMunkholm/AdsExport/internal/cache"
	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/export"
	"github.com/JonMunkholm/AdsExport/internal/history"
	"github.com/JonMunkholm/AdsExport/internal/legacy"
	"github.com/JonMunkholm/AdsExport/internal/logging"
	"github.com/JonMunkholm/AdsExport/internal/schema"
	"github.com/JonMunkholm/AdsExport/internal/validate"
)

// DefaultCacheTTL is used when Options.CacheTTL is not positive.
const DefaultCacheTTL = time.Hour

// ErrValidationFailed is the sentinel behind every *ValidationError.
var ErrValidationFailed = errors.New("campaign failed validation")

// ValidationError is returned in strict mode when the semantic pass finds errors.
type ValidationError struct {
	Result validate.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(e.Result.ErrorStrings(), "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Options configures a Service. Zero values disable the optional parts.
type Options struct {
	Cache    cache.Service
	CacheTTL time.Duration
	History  history.Store
	Limiter  *ExportLimiter
	Logger   *zap.Logger

	// Strict refuses exports whose semantic validation has errors.
	Strict bool
}

// Service provides the core business logic for campaign exports.
type Service struct {
	encoder  *export.Encoder
	cache    cache.Service
	cacheTTL time.Duration
	history  history.Store
	limiter  *ExportLimiter
	logger   *zap.Logger
	strict   bool
}

// NewService creates a new Service instance.
func NewService(opts Options) *Service {
	s := &Service{
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		history:  opts.History,
		limiter:  opts.Limiter,
		logger:   opts.Logger,
		strict:   opts.Strict,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = DefaultCacheTTL
	}
	if s.history == nil {
		s.history = history.NopStore{}
	}
	if s.limiter == nil {
		s.limiter = NewExportLimiter(0, 0)
	}
	s.encoder = export.NewEncoder(export.WithLogger(s.logger))
	return s
}

// Strict reports whether validation errors block exports.
func (s *Service) Strict() bool {
	return s.strict
}

// Export is a rendered campaign file and what was learned producing it.
type Export struct {
	ID          uuid.UUID       `json:"id"`
	Filename    string          `json:"filename"`
	Fingerprint string          `json:"fingerprint"`
	Data        []byte          `json:"-"`
	Report      export.Report   `json:"report"`
	Validation  validate.Result `json:"validation"`
	Cached      bool            `json:"cached"`
}

// Warnings returns the validation warnings. Skipped ads and dropped
// extensions are among them, so the encoder report adds nothing new.
func (e *Export) Warnings() []string {
	return e.Validation.WarningStrings()
}

// cachedExport is the cache representation of a rendered file.
type cachedExport struct {
	Data   []byte        `json:"data"`
	Report export.Report `json:"report"`
}

// Export validates, renders and records a canonical campaign.
func (s *Service) Export(ctx context.Context, c *campaign.Campaign, source history.Source) (*Export, error) {
	if c == nil {
		return nil, ErrEmptyBody
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	logger := logging.Enrich(ctx, s.logger).With(zap.String("campaign", c.Name))

	result := validate.Semantics(c)
	if s.strict && !result.Valid {
		logger.Info("export refused by validation", zap.Int("errors", len(result.Errors)))
		return nil, &ValidationError{Result: result}
	}

	fingerprint, err := export.Fingerprint(c)
	if err != nil {
		return nil, fmt.Errorf("fingerprint campaign: %w", err)
	}
	key := cache.Key("csv", fingerprint)

	out, hit := s.lookup(ctx, logger, key)
	if !hit {
		r := s.encoder.Encode(c)
		out = cachedExport{Data: r.Data, Report: r.Report}
		s.store(ctx, logger, key, out)
	}

	exp := &Export{
		Filename:    export.Filename(c),
		Fingerprint: fingerprint,
		Data:        out.Data,
		Report:      out.Report,
		Validation:  result,
		Cached:      hit,
	}

	entry, err := s.history.Record(ctx, history.Entry{
		CampaignName: c.Name,
		Fingerprint:  fingerprint,
		Filename:     exp.Filename,
		Source:       source,
		Rows:         out.Report.Counts.Total(),
		Bytes:        len(out.Data),
		Warnings:     len(result.Warnings),
		Errors:       len(result.Errors),
		SkippedAds:   len(out.Report.SkippedAds),
	})
	if err != nil {
		// The file is still usable without a history entry.
		logger.Warn("failed to record export history", zap.Error(err))
		exp.ID = uuid.New()
	} else {
		exp.ID = entry.ID
	}

	logger.Info("export rendered",
		zap.String("export_id", exp.ID.String()),
		zap.String("source", string(source)),
		zap.Int("rows", out.Report.Counts.Total()),
		zap.Int("bytes", len(out.Data)),
		zap.Bool("cached", hit),
		zap.Int("warnings", len(result.Warnings)),
		zap.Int("errors", len(result.Errors)),
	)

	return exp, nil
}

// ExportLegacy adapts a legacy JSON payload and exports it.
func (s *Service) ExportLegacy(ctx context.Context, data []byte) (*Export, error) {
	c, err := s.adapt(data)
	if err != nil {
		return nil, err
	}
	return s.Export(ctx, c, history.SourceLegacy)
}

func (s *Service) adapt(data []byte) (*campaign.Campaign, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyBody
	}
	return legacy.AdaptJSON(data)
}

func (s *Service) lookup(ctx context.Context, logger *zap.Logger, key string) (cachedExport, bool) {
	if s.cache == nil {
		return cachedExport{}, false
	}

	data, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return cachedExport{}, false
	}
	if err != nil {
		logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return cachedExport{}, false
	}

	var out cachedExport
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return cachedExport{}, false
	}
	return out, true
}

func (s *Service) store(ctx context.Context, logger *zap.Logger, key string, out cachedExport) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		logger.Warn("failed to encode cache entry", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Validate runs the semantic pass on a canonical campaign.
func (s *Service) Validate(c *campaign.Campaign) validate.Result {
	return validate.Semantics(c)
}

// ValidateLegacy adapts a legacy payload and runs the semantic pass.
func (s *Service) ValidateLegacy(data []byte) (validate.Result, error) {
	c, err := s.adapt(data)
	if err != nil {
		return validate.Result{}, err
	}
	return validate.Semantics(c), nil
}

// ValidateCSV runs the physical pass on a rendered file.
func (s *Service) ValidateCSV(r io.Reader) validate.Result {
	return validate.PhysicalFormatReader(r)
}

// Columns returns the editor header in order.
func (s *Service) Columns() []string {
	return schema.Editor.Columns()
}

// Summary describes what an export of a campaign would contain.
type Summary struct {
	campaign.Stats
	Columns int              `json:"columns"`
	Rows    export.RowCounts `json:"rows"`
}

// Summarize counts entities and the rows they would produce without
// rendering the file.
func (s *Service) Summarize(c *campaign.Campaign) Summary {
	_, report := s.encoder.Rows(c)
	return Summary{
		Stats:   campaign.ComputeStats(c),
		Columns: schema.Editor.Len(),
		Rows:    report.Counts,
	}
}

// History returns up to limit recent exports, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]history.Entry, error) {
	return s.history.Recent(ctx, limit)
}

// HistoryEntry returns one export by id.
func (s *Service) HistoryEntry(ctx context.Context, id string) (history.Entry, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return history.Entry{}, fmt.Errorf("invalid export id %q: %w", id, err)
	}
	return s.history.Get(ctx, parsed)
}

// LimiterStatus reports export concurrency.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// Drain waits for in-flight exports to finish.
func (s *Service) Drain(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
