package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"summary/internal/domain"
	"summary/internal/service"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Highlights(doc domain.Document, n int) ([]domain.Highlight, error)
	SetEngine(engine service.Engine)
}

// EngineFactory builds a summarizer for a language name typed by the user.
type EngineFactory func(language string) (service.Engine, error)

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service    SummaryPort
	newEngine  EngineFactory
	documents  []domain.Document
	current    int
	n          int
	language   string
	input      textinput.Model
	viewport   viewport.Model
	highlights []domain.Highlight
	status     string
	ready      bool
}

// New creates a new TUI model instance showing documents with n sentences selected.
func New(svc SummaryPort, newEngine EngineFactory, documents []domain.Document, language string, n int) Model {
	ti := textinput.New()
	ti.Prompt = "language> "
	ti.Placeholder = "Type a language and press Enter"
	ti.Focus()
	ti.CharLimit = 32
	vp := viewport.New(0, 0)
	m := Model{
		service:   svc,
		newEngine: newEngine,
		documents: documents,
		n:         max(n, 1),
		language:  language,
		input:     ti,
		viewport:  vp,
		status:    "up/down: sentences  tab: next document  enter: switch language",
	}
	m.refresh()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around document and input boxes
		_, dh := documentBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header + status + input box + spacer
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-dh)
		m.viewport.SetContent(m.render())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				m.switchLanguage(name)
				m.input.SetValue("")
				return m, nil
			}
		case "up":
			m.n++
			m.refresh()
			return m, nil
		case "down":
			if m.n > 1 {
				m.n--
				m.refresh()
			}
			return m, nil
		case "tab":
			if len(m.documents) > 0 {
				m.current = (m.current + 1) % len(m.documents)
				m.refresh()
			}
			return m, nil
		case "shift+tab":
			if len(m.documents) > 0 {
				m.current = (m.current - 1 + len(m.documents)) % len(m.documents)
				m.refresh()
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current document.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render(m.title())
	document := documentBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + document + "\n" + input + "\n" + status
}

// Selected returns the currently highlighted sentences, trimmed.
func (m Model) Selected() []string {
	var out []string
	for _, h := range m.highlights {
		if h.Selected {
			out = append(out, strings.TrimSpace(h.Sentence.Text))
		}
	}
	return out
}

func (m *Model) switchLanguage(name string) {
	engine, err := m.newEngine(name)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.service.SetEngine(engine)
	m.language = name
	m.refresh()
	if !strings.HasPrefix(m.status, "Error") {
		m.status = fmt.Sprintf("Language set to %s", name)
	}
}

func (m *Model) refresh() {
	if len(m.documents) == 0 {
		m.highlights = nil
		m.status = "No documents loaded."
		return
	}
	hl, err := m.service.Highlights(m.documents[m.current], m.n)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.highlights = nil
	} else {
		m.highlights = hl
		m.status = fmt.Sprintf("%d of %d sentences selected", len(m.Selected()), len(hl))
	}
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

func (m Model) title() string {
	if len(m.documents) == 0 {
		return "Summary"
	}
	doc := m.documents[m.current]
	return fmt.Sprintf("Summary  %s  [%d/%d]  language=%s  n=%d",
		doc.Path, m.current+1, len(m.documents), m.language, m.n)
}

func (m Model) render() string {
	if len(m.highlights) == 0 {
		return "Nothing to show."
	}
	var b strings.Builder
	for _, h := range m.highlights {
		text := h.Sentence.Text
		body := strings.TrimRightFunc(text, unicode.IsSpace)
		tail := text[len(body):]
		if h.Selected {
			body = highlightStyle.Render(body)
		} else {
			body = dimStyle.Render(body)
		}
		b.WriteString(body)
		b.WriteString(tail)
	}
	if m.viewport.Width > 0 {
		return lipgloss.NewStyle().Width(m.viewport.Width).Render(b.String())
	}
	return b.String()
}

var (
	documentBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
