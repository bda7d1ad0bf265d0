// Package schema defines the fixed physical layout of the Ads Editor CSV.
//
// The layout is computed once at init time from [EditorColumns] and is
// read-only afterwards, so it is safe to share across goroutines. Callers
// address cells by column name through [Layout.Index]; numeric positions are
// never hard-coded outside this package.
package schema

import (
	"fmt"
	"strconv"
)

// Layout is an immutable ordered column catalogue with O(1) name lookup.
type Layout struct {
	columns []string
	index   map[string]int
}

// Editor is the layout of the Ads Editor bulk import file.
var Editor = NewLayout(EditorColumns)

// NewLayout builds a layout from an ordered list of column names.
// Panics if a column name appears twice.
func NewLayout(columns []string) *Layout {
	l := &Layout{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(l.columns, columns)

	for i, name := range l.columns {
		if _, exists := l.index[name]; exists {
			panic(fmt.Sprintf("column already registered: %s", name))
		}
		l.index[name] = i
	}

	return l
}

// Index returns the zero-based position of a column.
// Returns false if the name is not part of the layout.
func (l *Layout) Index(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// MustIndex returns the position of a column and panics if it is unknown.
// An unknown name here is a programming error, never a data error.
func (l *Layout) MustIndex(name string) int {
	i, ok := l.index[name]
	if !ok {
		panic(fmt.Sprintf("unknown column: %q", name))
	}
	return i
}

// Len returns the number of columns.
func (l *Layout) Len() int {
	return len(l.columns)
}

// Columns returns a copy of the ordered column names.
func (l *Layout) Columns() []string {
	out := make([]string, len(l.columns))
	copy(out, l.columns)
	return out
}

// Has reports whether the layout contains the named column.
func (l *Layout) Has(name string) bool {
	_, ok := l.index[name]
	return ok
}

// SitelinkColumn returns the name of a numbered sitelink column,
// e.g. SitelinkColumn(2, "Final URL") -> "Sitelink 2 Final URL".
func SitelinkColumn(n int, field string) string {
	return "Sitelink " + strconv.Itoa(n) + " " + field
}

// CalloutColumn returns the name of a numbered callout column.
func CalloutColumn(n int, field string) string {
	return "Callout " + strconv.Itoa(n) + " " + field
}

// HeadlineColumn returns "Headline n".
func HeadlineColumn(n int) string {
	return "Headline " + strconv.Itoa(n)
}

// DescriptionColumn returns "Description n".
func DescriptionColumn(n int) string {
	return "Description " + strconv.Itoa(n)
}

// PriceItemColumn returns the name of a numbered price item column of the
// first price extension, e.g. "Price Extension 1 Item 3 Price".
func PriceItemColumn(n int, field string) string {
	return "Price Extension 1 Item " + strconv.Itoa(n) + " " + field
}
