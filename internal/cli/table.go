package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table aligns rows of text into columns. Cell widths are measured with
// lipgloss so cells containing styled swatches line up with plain ones.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a table with the given headers. A table with no headers
// prints rows only.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, padding: 2}
}

// AddRow appends a row. When the table has headers the row is padded or
// truncated to match them.
func (t *Table) AddRow(cells ...string) {
	if n := len(t.headers); n > 0 && len(cells) != n {
		row := make([]string, n)
		copy(row, cells)
		cells = row
	}
	t.rows = append(t.rows, cells)
}

// columns returns the number of columns to lay out.
func (t *Table) columns() int {
	n := len(t.headers)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	return n
}

// widths measures the widest cell in each column.
func (t *Table) widths() []int {
	w := make([]int, t.columns())
	for i, h := range t.headers {
		w[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			w[i] = max(w[i], lipgloss.Width(cell))
		}
	}
	return w
}

// Render formats the table. The last column is never padded.
func (t *Table) Render() string {
	if t.columns() == 0 {
		return ""
	}

	widths := t.widths()
	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	line := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(gap)
			}
			if i == len(cells)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(padRight(cell, widths[i]))
		}
		b.WriteString("\n")
	}

	if len(t.headers) > 0 {
		line(t.headers)
		sep := make([]string, len(widths))
		for i, w := range widths {
			sep[i] = strings.Repeat("-", w)
		}
		line(sep)
	}
	for _, row := range t.rows {
		line(row)
	}

	return b.String()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
