package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/agent"
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// turnResultMsg carries a finished orchestrator turn back into the model.
type turnResultMsg struct {
	resp *agent.TurnResponse
	err  error
}

// chatModel is the bubbletea model for the terminal chat REPL.
type chatModel struct {
	app       *App
	datasetID string
	filename  string
	showCode  bool

	input    textinput.Model
	lines    []string
	waiting  bool
	quitting bool
}

func newChatModel(app *App, datasetID, filename string, showCode bool) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 500

	welcome := dimStyle.Render(
		"Loaded " + filename + ". Describe what to forecast, or just say hello to get a proposal.\n" +
			"Type 'exit' or press ctrl+c to quit.")

	return chatModel{
		app:       app,
		datasetID: datasetID,
		filename:  filename,
		showCode:  showCode,
		input:     ti,
		lines:     []string{welcome},
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && !m.waiting {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if text == "exit" || text == "quit" {
				m.quitting = true
				return m, tea.Quit
			}

			m.lines = append(m.lines, userStyle.Render("You: ")+text)
			m.input.SetValue("")
			m.waiting = true
			return m, m.sendTurn(text)
		}

	case turnResultMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, errorStyle.Render("error: ")+msg.err.Error())
			return m, nil
		}
		m.lines = append(m.lines, assistantStyle.Render("Assistant:")+"\n"+msg.resp.AssistantMessage)
		if m.showCode && msg.resp.GeneratedCode != "" {
			m.lines = append(m.lines, dimStyle.Render("--- generated code ---\n"+msg.resp.GeneratedCode))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return dimStyle.Render("Goodbye.") + "\n"
	}

	var b strings.Builder
	b.WriteString(strings.Join(m.lines, "\n\n"))
	b.WriteString("\n\n")
	if m.waiting {
		b.WriteString(dimStyle.Render("thinking..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}

// sendTurn runs one orchestrator turn off the UI loop.
func (m chatModel) sendTurn(text string) tea.Cmd {
	app := m.app
	datasetID := m.datasetID
	showCode := m.showCode
	return func() tea.Msg {
		resp, err := app.Orchestrator.HandleTurn(cmdContext(), agent.TurnRequest{
			DatasetID: datasetID,
			Message:   text,
			ShowCode:  showCode,
		})
		return turnResultMsg{resp: resp, err: err}
	}
}

func cmdContext() context.Context {
	return context.Background()
}
