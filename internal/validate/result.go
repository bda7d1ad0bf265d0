// Package validate checks campaigns before export and finished CSV files
// after export.
//
// The two passes are independent. [Semantics] looks at the campaign model
// and enforces per-extension field rules; [PhysicalFormat] re-parses CSV
// text and enforces the column contract of the editor layout. Both return a
// [Result] whose errors block the export and whose warnings are
// informational only.
package validate

// Issue is a single finding. Field locates the offending value when known,
// e.g. "sitelinks[2].text" or "row 5".
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result is the outcome of one validation pass.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

func (r *Result) errorf(field, msg string) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: msg})
}

func (r *Result) warnf(field, msg string) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Message: msg})
}

func (r *Result) finish() Result {
	if r.Errors == nil {
		r.Errors = []Issue{}
	}
	if r.Warnings == nil {
		r.Warnings = []Issue{}
	}
	r.Valid = len(r.Errors) == 0
	return *r
}

// ErrorStrings returns the error messages in order.
func (r Result) ErrorStrings() []string {
	return messages(r.Errors)
}

// WarningStrings returns the warning messages in order.
func (r Result) WarningStrings() []string {
	return messages(r.Warnings)
}

// Merge combines two results. The merged result is valid only if both are.
func (r Result) Merge(other Result) Result {
	out := Result{
		Errors:   append(append([]Issue{}, r.Errors...), other.Errors...),
		Warnings: append(append([]Issue{}, r.Warnings...), other.Warnings...),
	}
	return out.finish()
}

func messages(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.Message
	}
	return out
}
