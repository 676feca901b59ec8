// Package tui is an interactive browser for scan results: a match table on
// top, a hexdump of the surrounding bytes underneath, clipboard export of
// the selected offset.
package tui

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bytesleuth/bytesleuth/internal/report"
	"github.com/bytesleuth/bytesleuth/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))
)

// contextRows is how many full hexdump rows are shown either side of a match.
const contextRows = 4

// rowRef maps a flattened table row back to its file and match.
type rowRef struct {
	file  int
	match int
}

// Model is the bubbletea state for the results browser.
type Model struct {
	table    table.Model
	viewport viewport.Model
	files    []types.FileMatches
	rows     []rowRef
	readFile func(path string) ([]byte, error)
	buffers  map[string][]byte
	ready    bool
	status   string
	quitting bool
}

// NewModel builds a browser over the given per-file matches. readFile loads
// a file's bytes on demand for the hexdump pane.
func NewModel(files []types.FileMatches, readFile func(path string) ([]byte, error)) Model {
	var rows []rowRef
	var trows []table.Row
	for fi, f := range files {
		for mi, m := range f.Matches {
			rows = append(rows, rowRef{file: fi, match: mi})
			trows = append(trows, table.Row{
				fmt.Sprintf("0x%04X", m.Offset),
				fmt.Sprintf("%d", m.Offset),
				m.Bytes.String(),
				string(m.Encoding),
				f.Path,
			})
		}
	}

	cols := []table.Column{
		{Title: "Offset", Width: 8},
		{Title: "Dec", Width: 8},
		{Title: "Bytes", Width: 12},
		{Title: "Encoding", Width: 11},
		{Title: "File", Width: 36},
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(trows),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).Bold(true)
	t.SetStyles(s)

	return Model{
		table:    t,
		files:    files,
		rows:     rows,
		readFile: readFile,
		buffers:  map[string][]byte{},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tableHeight := msg.Height / 2
		if tableHeight < 5 {
			tableHeight = 5
		}
		m.table.SetWidth(msg.Width - 2)
		m.table.SetHeight(tableHeight)
		detailHeight := msg.Height - tableHeight - 6
		if detailHeight < 3 {
			detailHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, detailHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = detailHeight
		}
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "c":
			if ref, ok := m.selected(); ok {
				off := m.files[ref.file].Matches[ref.match].Offset
				if err := clipboard.WriteAll(fmt.Sprintf("0x%X", off)); err != nil {
					m.status = "clipboard unavailable"
				} else {
					m.status = fmt.Sprintf("copied 0x%X", off)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.refreshDetail()
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	title := titleStyle.Render(fmt.Sprintf("bytesleuth — %d match(es)", len(m.rows)))
	body := tableBorderStyle.Render(m.table.View())
	detail := ""
	if m.ready {
		detail = detailBorderStyle.Render(m.viewport.View())
	}
	status := m.status
	if status == "" {
		status = "↑/↓ select · c copy offset · q quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body, detail, statusStyle.Render(" "+status+" "))
}

func (m Model) selected() (rowRef, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return rowRef{}, false
	}
	return m.rows[i], true
}

// refreshDetail re-renders the hexdump pane for the selected match.
func (m *Model) refreshDetail() {
	if !m.ready {
		return
	}
	ref, ok := m.selected()
	if !ok {
		m.viewport.SetContent("no matches")
		return
	}
	f := m.files[ref.file]
	match := f.Matches[ref.match]
	buf, err := m.buffer(f.Path)
	if err != nil {
		m.viewport.SetContent(fmt.Sprintf("cannot read %s: %v", f.Path, err))
		return
	}
	dump := report.HexdumpAround(buf, match.Offset, len(match.Bytes), contextRows)
	m.viewport.SetContent(highlightHexdump(dump))
}

func (m *Model) buffer(path string) ([]byte, error) {
	if b, ok := m.buffers[path]; ok {
		return b, nil
	}
	b, err := m.readFile(path)
	if err != nil {
		return nil, err
	}
	m.buffers[path] = b
	return b, nil
}

// highlightHexdump colorizes a hexdump via chroma's hexdump lexer; on any
// failure the plain text is shown instead.
func highlightHexdump(s string) string {
	lexer := lexers.Get("hexdump")
	if lexer == nil {
		return s
	}
	it, err := lexer.Tokenise(nil, s)
	if err != nil {
		return s
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return s
	}
	style := styles.Get("monokai")
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return s
	}
	return buf.String()
}
