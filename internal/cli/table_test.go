package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("ROLE", "COLOURS")

	table.AddRow("primary", "ff0000")
	table.AddRow("accent")
	table.AddRow("neutral", "808080", "extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row to be truncated, got %q", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("FORMAT", "VALUE")
	table.AddRow("hex", "#009cff")
	table.AddRow("decimal", "40191")

	want := strings.Join([]string{
		"FORMAT   VALUE",
		"-------  -------",
		"hex      #009cff",
		"decimal  40191",
		"",
	}, "\n")

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTableRenderWithoutHeaders(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "b")
	table.AddRow("longer", "c")

	want := "a       b\nlonger  c\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() of empty table = %q, want empty", got)
	}
}

func TestTableAlignsStyledCells(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	styled := r.NewStyle().Background(lipgloss.Color("#ff0000")).Render("red")

	table := NewTable()
	table.AddRow(styled, "x")
	table.AddRow("plain", "y")

	got := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(got) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(got))
	}
	if lipgloss.Width(got[0]) != lipgloss.Width(got[1]) {
		t.Errorf("Styled row width %d != plain row width %d", lipgloss.Width(got[0]), lipgloss.Width(got[1]))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abcdef"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.s, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
