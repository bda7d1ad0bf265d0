package schema

// Row is one physical CSV row: exactly Layout.Len() cells, empty by default.
// Cells hold raw, unescaped values.
type Row struct {
	layout *Layout
	cells  []string
}

// NewRow returns an empty row sized to the layout.
func (l *Layout) NewRow() Row {
	return Row{layout: l, cells: make([]string, len(l.columns))}
}

// HeaderRow returns a row whose cells are the column names themselves.
func (l *Layout) HeaderRow() Row {
	return Row{layout: l, cells: l.Columns()}
}

// Set writes value into the named column. Panics on an unknown column name.
func (r Row) Set(name, value string) {
	r.cells[r.layout.MustIndex(name)] = value
}

// Get returns the value of the named column, or "" if the column is unknown.
func (r Row) Get(name string) string {
	i, ok := r.layout.Index(name)
	if !ok {
		return ""
	}
	return r.cells[i]
}

// Cells returns the underlying cell slice in column order.
func (r Row) Cells() []string {
	return r.cells
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.cells)
}

// Layout returns the layout the row was created from.
func (r Row) Layout() *Layout {
	return r.layout
}
