package validate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/AdsExport/internal/schema"
)

// PhysicalFormat checks finished CSV text against the editor layout.
func PhysicalFormat(text string) Result {
	return PhysicalFormatReader(strings.NewReader(text))
}

// PhysicalFormatReader is PhysicalFormat over a stream. A leading byte order
// mark is ignored. Quoted fields may contain commas and line breaks.
func PhysicalFormatReader(r io.Reader) Result {
	return checkLayout(r, schema.Editor, schema.RequiredHeaders)
}

func checkLayout(r io.Reader, layout *schema.Layout, required []string) Result {
	var res Result
	want := layout.Len()

	cr := csv.NewReader(newBOMSkippingReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	rowNum := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.errorf(fmt.Sprintf("row %d", rowNum+1), fmt.Sprintf("CSV could not be parsed: %v", err))
			return res.finish()
		}
		rowNum++

		if header == nil {
			header = record
			if len(record) != want {
				res.errorf("header", fmt.Sprintf("CSV must have exactly %d columns, found %d", want, len(record)))
			}
			continue
		}

		if len(record) != want {
			res.errorf(fmt.Sprintf("row %d", rowNum), fmt.Sprintf("Row %d has %d columns, expected %d", rowNum, len(record), want))
		}
	}

	if header == nil {
		res.errorf("", "CSV is empty")
		return res.finish()
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, name := range required {
		if !present[name] {
			res.errorf("header", fmt.Sprintf("Missing required header: %s", name))
		}
	}

	return res.finish()
}
