package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonylturner/lsaddr/internal/ui"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

// maxHistory bounds the list of accepted addresses shown under the editor.
const maxHistory = 8

// Model is the address explorer. Every keystroke re-parses the input.
type Model struct {
	parser    xgt.Parser
	modelName string
	styles    ui.Styles

	input   []rune
	addr    xgt.Address
	err     error
	history []string
	status  string
}

// NewModel creates an explorer for the given parser, optionally pre-filled.
func NewModel(parser xgt.Parser, modelName, initial string, styles ui.Styles) *Model {
	m := &Model{
		parser:    parser,
		modelName: modelName,
		styles:    styles,
		input:     []rune(initial),
	}
	m.reparse()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case clipboardCopyMsg:
		if msg.success {
			m.status = "copied " + msg.content
		} else if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copy failed"
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case tea.KeyCtrlU:
		m.input = m.input[:0]

	case tea.KeyEnter:
		if m.err == nil && len(m.input) > 0 {
			m.history = append([]string{m.summary()}, m.history...)
			if len(m.history) > maxHistory {
				m.history = m.history[:maxHistory]
			}
			m.input = m.input[:0]
		}

	case tea.KeyCtrlY:
		if m.err == nil && len(m.input) > 0 {
			return m, copyToClipboard(xgt.FormatHex(xgt.AddressField(m.addr)))
		}
		return m, nil

	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)

	default:
		return m, nil
	}

	m.status = ""
	m.reparse()
	return m, nil
}

func (m *Model) reparse() {
	if len(m.input) == 0 {
		m.addr, m.err = xgt.Address{}, nil
		return
	}
	m.addr, m.err = m.parser.Parse(string(m.input))
}

func (m *Model) summary() string {
	return fmt.Sprintf("%-10s %-10s bits %d-%d  field %s",
		m.addr.Text, m.addr.DataType, m.addr.StartBit, m.addr.EndBit, xgt.FormatHex(xgt.AddressField(m.addr)))
}

// View implements tea.Model.
func (m *Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(fmt.Sprintf("lsaddr explorer | %s | %d bits", m.modelName, m.parser.MemorySize())))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("address> %s_\n\n", string(m.input)))

	switch {
	case len(m.input) == 0:
		b.WriteString(s.Meta.Render("type an address, e.g. %MW100 or MB5,8"))
	case m.err != nil:
		b.WriteString(s.Error.Render(m.err.Error()))
	default:
		b.WriteString(ui.RenderAddress(m.addr, s))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + s.Meta.Render(m.status) + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n" + s.Label.Render("accepted:") + "\n")
		for _, h := range m.history {
			b.WriteString("  " + h + "\n")
		}
	}

	b.WriteString("\n" + s.Meta.Render("enter: keep  ctrl+y: copy field  ctrl+u: clear  esc: quit"))
	return b.String()
}

// History returns the accepted address summaries, newest first.
func (m *Model) History() []string {
	return append([]string(nil), m.history...)
}
