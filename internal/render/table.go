package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adexdump/internal/report"
)

// Table is a boxed fixed-width text table. Every row, header included, is
// followed by a dashed rule.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a Table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Widths returns the display width of each column, headers included.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// RuleWidth is the total line width: the column widths plus "| ", " | "
// between columns and " |".
func RuleWidth(widths []int) int {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return total
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	widths := t.Widths()
	rule := strings.Repeat("-", RuleWidth(widths)) + "\n"

	bw := bufio.NewWriter(w)
	bw.WriteString(rule)
	bw.WriteString(formatRow(t.Headers, widths))
	bw.WriteString(rule)
	for _, row := range t.Rows {
		bw.WriteString(formatRow(row, widths))
		bw.WriteString(rule)
	}
	return bw.Flush()
}

func formatRow(cells []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		if pad := w - lipgloss.Width(cell); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Text writes r as a boxed table. An empty report renders the header box only.
func Text(w io.Writer, r *report.Report) error {
	headers := r.Kind.Headers()
	t := NewTable(headers[0], headers[1])
	for _, f := range r.Findings {
		t.AddRow(f.Label, f.Detail)
	}
	return t.Render(w)
}
