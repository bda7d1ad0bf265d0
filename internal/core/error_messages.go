package core

// # Error Codes Reference
//
// Error codes are grouped by category. When users encounter errors, they can
// quote the code to support staff for faster diagnosis.
//
// # Input Errors (INP001-INP099)
//
//	INP001 - Invalid JSON: The campaign is not valid JSON
//	         Patterns: "invalid json", "decode campaign"
//	INP002 - Empty body: No campaign was sent
//	         Patterns: "empty request body"
//	INP003 - Too large: Request body exceeds the configured limit
//	         Patterns: "request body too large"
//	INP004 - Unsupported format: File type is not JSON or YAML
//	         Patterns: "unsupported format"
//	INP005 - Invalid YAML: The campaign is not valid YAML
//	         Patterns: "yaml:"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Campaign invalid: Extension data failed validation
//	         Patterns: "failed validation"
//	VAL002 - Invalid CSV: File does not match the editor layout
//	         Patterns: "invalid csv"
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - System busy: Too many exports in progress
//	         Patterns: "too many concurrent exports"
//	EXP002 - Not found: Export history entry does not exist
//	         Patterns: "export not found", "invalid export id"
//
// # Storage Errors (DB001-DB099)
//
//	DB001 - Connection refused: Unable to reach a backing service
//	DB002 - Connection reset: Connection was interrupted
//	DB003 - Timeout: Operation timed out
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled ("context canceled")
//	REQ002 - Request timeout ("context deadline exceeded")
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests ("rate limit")
//
// # Default Error (ERR000)
//
// Fallback when no pattern matches. Check the logs for the technical error.
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"`
	Action  string `json:"action"`
	Code    string `json:"code"`
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Input
	{
		pattern: "invalid json",
		msg: UserMessage{
			Message: "The campaign is not valid JSON",
			Action:  "Check the request body for syntax errors",
			Code:    "INP001",
		},
	},
	{
		pattern: "decode campaign",
		msg: UserMessage{
			Message: "The campaign could not be read",
			Action:  "Check field names and value types against the campaign format",
			Code:    "INP001",
		},
	},
	{
		pattern: "empty request body",
		msg: UserMessage{
			Message: "No campaign was sent",
			Action:  "Send the campaign as the request body",
			Code:    "INP002",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The request is larger than the allowed limit",
			Action:  "Split the campaign or remove unused assets",
			Code:    "INP003",
		},
	},
	{
		pattern: "unsupported format",
		msg: UserMessage{
			Message: "File format is not supported",
			Action:  "Use a .json, .yaml or .yml campaign file",
			Code:    "INP004",
		},
	},
	{
		pattern: "yaml:",
		msg: UserMessage{
			Message: "The campaign is not valid YAML",
			Action:  "Check indentation and quoting in the campaign file",
			Code:    "INP005",
		},
	},

	// Validation
	{
		pattern: "failed validation",
		msg: UserMessage{
			Message: "The campaign has invalid extension data",
			Action:  "Fix the listed errors and export again",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File does not match the Google Ads Editor layout",
			Action:  "Export the campaign again instead of editing the file by hand",
			Code:    "VAL002",
		},
	},

	// Export
	{
		pattern: "too many concurrent exports",
		msg: UserMessage{
			Message: "System is busy processing other exports",
			Action:  "Please wait a moment and try again",
			Code:    "EXP001",
		},
	},
	{
		pattern: "export not found",
		msg: UserMessage{
			Message: "Export not found",
			Action:  "Check the export id or list recent exports",
			Code:    "EXP002",
		},
	},
	{
		pattern: "invalid export id",
		msg: UserMessage{
			Message: "Export not found",
			Action:  "Check the export id or list recent exports",
			Code:    "EXP002",
		},
	},

	// Request lifecycle. These come before the storage timeout pattern so a
	// cancelled request is not reported as a database problem.
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},

	// Storage
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to a backing service",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB003",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. The first
// matching pattern wins; ERR000 is returned when nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError formats err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
