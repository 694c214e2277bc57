package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/duel-engine/pkg/battle"
	"github.com/muesli/reflow/wordwrap"
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
//
// The player's choice is collected from key presses and handed to the
// engine through a Fixed policy, so each turn resolves inside Update.
type ConsoleUI struct {
	engine  *battle.Engine
	choice  *battle.Fixed
	actions []battle.Action

	logViewport viewport.Model
	transcript  []string
	ready       bool
	width       int
	height      int

	finished bool
	notice   string
	err      error

	showQuitModal bool

	// copyToClipboard is swapped out in tests.
	copyToClipboard func(string) error
}

type clipboardMsg struct {
	err error
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(1)

	sidePanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	turnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func NewConsoleUI(engine *battle.Engine, choice *battle.Fixed) ConsoleUI {
	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return ConsoleUI{
		engine:          engine,
		choice:          choice,
		actions:         battle.ActionsOf(engine.Player()),
		logViewport:     vp,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.65) - 4
		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 4
		m.ready = true
		m.writeLogContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		}

		switch key := msg.String(); key {
		case "q":
			if m.finished {
				return m, tea.Quit
			}
			m.showQuitModal = true
			return m, nil
		case "c":
			return m, m.copyTranscript()
		default:
			if m.finished || len(key) != 1 || key[0] < '1' || key[0] > '9' {
				break
			}
			idx := int(key[0] - '1')
			if idx >= len(m.actions) {
				break
			}
			m.playTurn(m.actions[idx])
			return m, nil
		}

	case clipboardMsg:
		if msg.err != nil {
			m.notice = errorStyle.Render("Copy failed: " + msg.err.Error())
		} else {
			m.notice = "Battle log copied to clipboard."
		}
		return m, nil
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// playTurn resolves one engine turn with the chosen player action and
// appends the same transcript lines the line-oriented CLI prints.
func (m *ConsoleUI) playTurn(action battle.Action) {
	m.choice.Action = action
	m.notice = ""

	if err := m.engine.NextTurn(); err != nil {
		m.err = err
		return
	}

	m.transcript = append(m.transcript, fmt.Sprintf("--- Turn %d ---", m.engine.Turn()-1))
	m.transcript = append(m.transcript, m.engine.Drain()...)
	m.transcript = append(m.transcript,
		m.engine.Player().Status(),
		m.engine.Enemy().Status(),
		"")

	if m.engine.Over() {
		m.finished = true
		m.transcript = append(m.transcript, "Battle finished!", winnerLine(m.engine.Outcome()))
	}
	m.writeLogContent()
}

func winnerLine(o battle.Outcome) string {
	if o.PlayerWon {
		return "Player wins!"
	}
	return "Enemy wins!"
}

func (m ConsoleUI) copyTranscript() tea.Cmd {
	text := strings.Join(m.transcript, "\n")
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return clipboardMsg{err: copyFn(text)}
	}
}

// writeLogContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeLogContent() {
	width := m.logViewport.Width - 2
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("BATTLE LOG") + "\n\n")
	for _, line := range m.transcript {
		content.WriteString(styleLogLine(wordwrap.String(line, width)) + "\n")
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func styleLogLine(line string) string {
	switch {
	case strings.HasPrefix(line, "--- Turn"):
		return turnStyle.Render(line)
	case strings.Contains(line, "Critical Hit"):
		return criticalStyle.Render(line)
	case strings.HasSuffix(line, "wins!"):
		return winStyle.Render(line)
	default:
		return line
	}
}

// writeSidePanel renders combatant status and the action menu.
func (m ConsoleUI) writeSidePanel() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("COMBATANTS") + "\n\n")
	content.WriteString(m.engine.Player().Status() + "\n")
	content.WriteString(m.engine.Enemy().Status() + "\n\n")

	if m.finished {
		content.WriteString(winStyle.Render(winnerLine(m.engine.Outcome())) + "\n\n")
	} else {
		content.WriteString(titleStyle.Render(fmt.Sprintf("TURN %d", m.engine.Turn())) + "\n\n")
		for i, a := range m.actions {
			content.WriteString(fmt.Sprintf("%d: %s\n", i+1, a.Name()))
		}
		content.WriteString("\n")
	}

	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}
	if m.notice != "" {
		content.WriteString(m.notice + "\n\n")
	}

	content.WriteString(promptStyle.Render("1-9: act • c: copy log • q: quit"))
	return content.String()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(keyMsg.String()) {
	case "y", "ctrl+c":
		return m, tea.Quit
	case "n", "esc":
		m.showQuitModal = false
	}
	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Flee the battle?"))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to keep fighting"))

	modal := modalStyle.Width(44).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.65) - 4
	sideWidth := m.width - logWidth - 4

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 2).Render(m.logViewport.View())
	sidePanel := sidePanelStyle.Width(sideWidth).Height(m.height - 2).Render(m.writeSidePanel())

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, sidePanel)
}
