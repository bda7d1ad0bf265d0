package export

import (
	"bytes"
	"strings"
)

// needsQuotes reports whether a field must be wrapped in double quotes.
// Only the delimiter, the quote itself and line breaks trigger quoting;
// leading spaces are written bare, which encoding/csv would not do.
func needsQuotes(s string) bool {
	return strings.ContainsAny(s, ",\"\r\n")
}

// escapeField returns the field as it appears on the wire.
func escapeField(s string) string {
	if !needsQuotes(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeRow(buf *bytes.Buffer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(escapeField(cell))
	}
}
