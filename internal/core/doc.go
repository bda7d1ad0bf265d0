// Package core provides the business logic for campaign exports.
//
// This package ties the export engine to its supporting services and has no
// transport dependencies. It can be used by the HTTP server, the CLI, or
// tests without modification.
//
// # Flow
//
// An export request moves through these steps:
//
//  1. Legacy payloads are adapted into the canonical campaign model.
//  2. The campaign is checked by the semantic validator. In strict mode any
//     validation error aborts the export with [ErrValidationFailed].
//  3. The campaign fingerprint is looked up in the cache. Output is
//     deterministic, so a hit is returned as is.
//  4. On a miss the campaign is encoded and the rendered file is cached.
//  5. Export metadata is recorded in the history store.
//
// Concurrent encodes are bounded by an [ExportLimiter].
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - INP001-INP005: Request input errors (JSON, body size, formats)
//   - VAL001-VAL002: Validation errors (campaign, CSV layout)
//   - EXP001-EXP002: Export errors (busy, unknown export)
//   - DB001-DB003: Storage errors (history database, cache)
//   - REQ001-REQ002: Request lifecycle errors (cancelled, timed out)
package core
