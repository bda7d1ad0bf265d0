// Package export encodes a campaign into the Ads Editor bulk import CSV.
//
// Encoding is a pure function of the campaign: the same input always yields
// the same bytes. Every row carries exactly one cell per layout column, rows
// are joined by CRLF and the output starts with a UTF-8 byte order mark so
// spreadsheet tools detect the encoding.
//
// Input defects never stop an export. Ads without usable text are skipped and
// extensions beyond what the layout can hold are dropped; both are reported
// on the [Report] side channel rather than as errors.
package export

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/schema"
)

// BOM is the UTF-8 byte order mark written before the header row.
var BOM = []byte{0xEF, 0xBB, 0xBF}

const lineBreak = "\r\n"

// Encoder renders campaigns through a fixed layout.
// It holds no per-call state and is safe for concurrent use.
type Encoder struct {
	layout *schema.Layout
	logger *zap.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLogger sets the logger used for skipped ads and dropped extensions.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEncoder returns an encoder for the editor layout.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		layout: schema.Editor,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the output of one encode call.
type Result struct {
	Data   []byte
	Report Report
}

// Rows returns the physical rows in output order (header first) without
// rendering them, along with the report of what was skipped or dropped.
func (e *Encoder) Rows(c *campaign.Campaign) ([]schema.Row, Report) {
	var report Report

	rows := []schema.Row{e.layout.HeaderRow(), campaignRow(e.layout, c)}
	report.Counts.Campaign = 1

	groups := adGroupRows(e.layout, c)
	keywords := keywordRows(e.layout, c)
	ads, skipped := adRows(e.layout, c)
	negatives := negativeKeywordRows(e.layout, c)
	locations := locationRows(e.layout, c)
	images := imageAssetRows(e.layout, c)
	videos := videoAssetRows(e.layout, c)

	report.Counts.AdGroups = len(groups)
	report.Counts.Keywords = len(keywords)
	report.Counts.Ads = len(ads)
	report.Counts.NegativeKeywords = len(negatives)
	report.Counts.Locations = len(locations)
	report.Counts.ImageAssets = len(images)
	report.Counts.VideoAssets = len(videos)

	rows = append(rows, groups...)
	rows = append(rows, keywords...)
	rows = append(rows, ads...)
	rows = append(rows, negatives...)
	rows = append(rows, locations...)
	rows = append(rows, images...)
	rows = append(rows, videos...)

	report.SkippedAds = skipped
	report.Dropped = droppedExtensions(c)

	return rows, report
}

// Encode renders the campaign. It panics if any row does not match the
// layout width, since the editor would silently shift every later column.
func (e *Encoder) Encode(c *campaign.Campaign) *Result {
	rows, report := e.Rows(c)

	checkWidths(e.layout, rows)

	var buf bytes.Buffer
	buf.Grow(len(rows) * e.layout.Len() * 2)
	buf.Write(BOM)

	for i, row := range rows {
		if i > 0 {
			buf.WriteString(lineBreak)
		}
		writeRow(&buf, row.Cells())
	}

	e.logReport(c, report)

	return &Result{Data: buf.Bytes(), Report: report}
}

func checkWidths(l *schema.Layout, rows []schema.Row) {
	for i, row := range rows {
		if row.Len() != l.Len() {
			panic(fmt.Sprintf("export: row %d has %d fields, layout has %d", i, row.Len(), l.Len()))
		}
	}
}

func (e *Encoder) logReport(c *campaign.Campaign, report Report) {
	for _, s := range report.SkippedAds {
		e.logger.Warn("skipping ad without headlines or descriptions",
			zap.String("campaign", c.Name),
			zap.String("ad_group", s.AdGroup),
			zap.Int("ad_index", s.Index),
			zap.Int("headlines", s.Headlines),
			zap.Int("descriptions", s.Descriptions),
		)
	}
	for _, d := range report.Dropped {
		e.logger.Debug("extension records beyond layout capacity not written",
			zap.String("campaign", c.Name),
			zap.String("kind", d.Kind),
			zap.Int("supplied", d.Supplied),
			zap.Int("written", d.Written),
		)
	}
}

var defaultEncoder = NewEncoder()

// Serialize renders the campaign with the default encoder.
func Serialize(c *campaign.Campaign) string {
	return string(defaultEncoder.Encode(c).Data)
}

// WriteTo renders the campaign into w.
func WriteTo(w io.Writer, c *campaign.Campaign) (int64, error) {
	n, err := w.Write(defaultEncoder.Encode(c).Data)
	return int64(n), err
}
