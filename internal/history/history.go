// Package history records completed exports.
//
// Only metadata is stored: the rendered file can always be rebuilt from the
// campaign, and the fingerprint identifies which campaign it was.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("export not found")

// Source tells which payload shape an export was built from.
type Source string

const (
	SourceCanonical Source = "canonical"
	SourceLegacy    Source = "legacy"
	SourceCLI       Source = "cli"
)

// Entry is one completed export.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	CampaignName string    `json:"campaignName"`
	Fingerprint  string    `json:"fingerprint"`
	Filename     string    `json:"filename"`
	Source       Source    `json:"source"`
	Rows         int       `json:"rows"`
	Bytes        int       `json:"bytes"`
	Warnings     int       `json:"warnings"`
	Errors       int       `json:"errors"`
	SkippedAds   int       `json:"skippedAds"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store persists entries.
type Store interface {
	// Record assigns ID and CreatedAt when unset and returns the stored entry.
	Record(ctx context.Context, e Entry) (Entry, error)
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Recent limits.
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return min(limit, MaxRecentLimit)
}

// NopStore discards entries. Used when no database is configured.
type NopStore struct{}

func (NopStore) Record(_ context.Context, e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e, nil
}

func (NopStore) Get(context.Context, uuid.UUID) (Entry, error) {
	return Entry{}, ErrNotFound
}

func (NopStore) Recent(context.Context, int) ([]Entry, error) {
	return []Entry{}, nil
}
