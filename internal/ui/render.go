package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tonylturner/lsaddr/internal/xgt"
)

// UseStyle decides whether output to f should be styled for the given
// configured style ("auto", "plain" or "styled").
func UseStyle(style string, f *os.File) bool {
	switch style {
	case "plain":
		return false
	case "styled":
		return true
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}

// Styles groups the lipgloss styles used for rendering.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Bytes lipgloss.Style
	Error lipgloss.Style
	Meta  lipgloss.Style
	Frame lipgloss.Style
}

// NewStyles returns the standard palette, or pass-through styles when styled is false.
func NewStyles(styled bool) Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Label: plain, Value: plain, Bytes: plain, Error: plain, Meta: plain, Frame: plain}
	}
	return Styles{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Bytes: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Meta:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
	}
}

// RenderAddress builds the detail view for a parsed address.
func RenderAddress(addr xgt.Address, s Styles) string {
	hb := addr.HeaderBytes
	vs := addr.ValueSizeBytes()
	rows := [][2]string{
		{"Type", addr.DataType.String()},
		{"Bits", fmt.Sprintf("%d - %d", addr.StartBit, addr.EndBit)},
		{"Bytes", fmt.Sprintf("%d - %d", addr.StartByte(), addr.EndByte())},
		{"Header", xgt.FormatHex(hb[:])},
		{"Value size", xgt.FormatHex(vs[:])},
	}

	lines := []string{s.Title.Render(addr.Text)}
	for _, row := range rows {
		value := s.Value.Render(row[1])
		if row[0] == "Header" || row[0] == "Value size" {
			value = s.Bytes.Render(row[1])
		}
		lines = append(lines, fmt.Sprintf("  %s %s", s.Label.Render(fmt.Sprintf("%-11s", row[0]+":")), value))
	}
	lines = append(lines, s.Meta.Render(fmt.Sprintf("  memory: %d bits", addr.MemorySize)))
	return s.Frame.Render(strings.Join(lines, "\n"))
}

// RenderValidation renders one line of validate output.
func RenderValidation(input, canonical string, err error, s Styles) string {
	if err != nil {
		return fmt.Sprintf("%s %s %s", s.Error.Render("INVALID"), input, s.Meta.Render("("+err.Error()+")"))
	}
	return fmt.Sprintf("%s %s -> %s", s.Bytes.Render("OK"), input, s.Value.Render(canonical))
}

// RenderModels renders the controller model table.
func RenderModels(models []xgt.Model, current string, s Styles) string {
	lines := []string{s.Title.Render(fmt.Sprintf("%-12s %12s  %s", "MODEL", "BITS", "DESCRIPTION"))}
	for _, m := range models {
		marker := " "
		if strings.EqualFold(m.Name, current) {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s%-11s %12d  %s", marker, m.Name, m.MemorySizeBits, s.Meta.Render(m.Description)))
	}
	return strings.Join(lines, "\n")
}
