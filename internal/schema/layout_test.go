package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorLayout_ColumnCount(t *testing.T) {
	assert.Equal(t, EditorColumnCount, Editor.Len())
	assert.Len(t, EditorColumns, EditorColumnCount)
}

func TestEditorLayout_FirstAndLastColumns(t *testing.T) {
	cols := Editor.Columns()
	assert.Equal(t, "Campaign", cols[0])
	assert.Equal(t, "Business Website", cols[len(cols)-1])
}

func TestEditorLayout_IndexMatchesPosition(t *testing.T) {
	for i, name := range EditorColumns {
		got, ok := Editor.Index(name)
		require.True(t, ok, "column %q missing from index", name)
		assert.Equal(t, i, got, "column %q", name)
	}
}

func TestEditorLayout_KnownPositions(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Campaign", 0},
		{"Campaign Status", 11},
		{"Ad Group", 13},
		{"Keyword", 17},
		{"Ad Type", 42},
		{"Final URL", 43},
		{"Headline 1", 48},
		{"Description 1", 63},
		{"Sitelink 1 Text", 77},
		{"Business Website", 182},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Editor.Index(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditorLayout_UnknownColumn(t *testing.T) {
	_, ok := Editor.Index("Sitelink 5 Text")
	assert.False(t, ok)
	assert.False(t, Editor.Has("campaign"), "lookup is case-sensitive")

	assert.Panics(t, func() { Editor.MustIndex("Headline 16") })
}

func TestEditorLayout_RequiredHeadersPresent(t *testing.T) {
	for _, h := range RequiredHeaders {
		assert.True(t, Editor.Has(h), "required header %q", h)
	}
}

func TestNewLayout_DuplicatePanics(t *testing.T) {
	assert.PanicsWithValue(t, "column already registered: A", func() {
		NewLayout([]string{"A", "B", "A"})
	})
}

func TestLayout_ColumnsIsCopy(t *testing.T) {
	cols := Editor.Columns()
	cols[0] = "mutated"
	assert.Equal(t, "Campaign", Editor.Columns()[0])
}

func TestIndexedColumnHelpers(t *testing.T) {
	names := []string{
		SitelinkColumn(4, "End Date"),
		CalloutColumn(1, "Status"),
		HeadlineColumn(15),
		DescriptionColumn(4),
		PriceItemColumn(4, "Final URL"),
	}
	for _, n := range names {
		assert.True(t, Editor.Has(n), "helper produced unknown column %q", n)
	}
}

func TestRow_SetGet(t *testing.T) {
	row := Editor.NewRow()
	require.Equal(t, EditorColumnCount, row.Len())

	row.Set("Keyword", "running shoes")
	assert.Equal(t, "running shoes", row.Get("Keyword"))
	assert.Equal(t, "running shoes", row.Cells()[17])
	assert.Equal(t, "", row.Get("Not A Column"))

	assert.Panics(t, func() { row.Set("Not A Column", "x") })
}

func TestHeaderRow(t *testing.T) {
	h := Editor.HeaderRow()
	assert.Equal(t, EditorColumns, h.Cells())
}
