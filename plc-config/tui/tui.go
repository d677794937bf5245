package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"plc-tools/plc-config/command"
	"plc-tools/plc-config/format"
	"plc-tools/plc-config/session"
	"plc-tools/plc-config/version"
)

// --- STYLES ---
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#575B7E")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusKeyStyle = lipgloss.NewStyle().Bold(true)

	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	weightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle    = lipgloss.NewStyle().Width(24).Padding(0, 1)
	valueStyle    = lipgloss.NewStyle().Width(22).Align(lipgloss.Right).Padding(0, 1)
	fieldStyle    = lipgloss.NewStyle().Width(28).Padding(0, 1)
	aliasStyle    = lipgloss.NewStyle().Width(9).Foreground(lipgloss.Color("245"))
	paramValStyle = lipgloss.NewStyle().Padding(0, 1)
)

const (
	tabsHeight     = 1
	topPaneHeight  = 13
	footerHeight   = 3
	minResultsRows = 3
)

// --- MODEL ---

type Model struct {
	session   *session.Session
	log       *zap.Logger
	active    session.Calculator
	viewport  viewport.Model
	textInput textinput.Model
	notice    string
	ready     bool
}

func NewModel(s *session.Session, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "set r 250 | set out thousands | calc | digital | help"
	ti.CharLimit = 156
	ti.Focus()

	return Model{
		session:   s,
		log:       logger,
		active:    session.Analog,
		textInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// --- UPDATE ---
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyTab {
			m.toggleCalculator()
			m.refresh()
			return m, nil
		}
		if m.textInput.Focused() {
			switch msg.Type {
			case tea.KeyEnter:
				cmd = m.handleCommand()
				m.refresh()
				return m, cmd
			case tea.KeyEsc:
				m.textInput.Blur()
				return m, nil
			case tea.KeyCtrlC:
				return m, tea.Quit
			}
		} else {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i", ":":
				return m, m.textInput.Focus()
			case "enter", "c":
				m.compute()
				m.refresh()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		verticalMargin := tabsHeight + topPaneHeight + footerHeight
		height := msg.Height - verticalMargin
		if height < minResultsRows {
			height = minResultsRows
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.Style = baseStyle
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil
	}

	if m.textInput.Focused() {
		m.textInput, cmd = m.textInput.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleCalculator() {
	if m.active == session.Analog {
		m.active = session.Digital
	} else {
		m.active = session.Analog
	}
	m.notice = ""
	m.session.SetStatus(fmt.Sprintf("%s calculator selected", calculatorLabel(m.active)))
}

func (m *Model) compute() {
	if err := m.session.Run(m.active); err != nil {
		m.session.SetStatus(format.Error(err))
		return
	}
	m.session.SetStatus(fmt.Sprintf("%s computed", calculatorLabel(m.active)))
}

func (m *Model) handleCommand() tea.Cmd {
	input := strings.TrimSpace(m.textInput.Value())
	defer m.textInput.SetValue("")
	if input == "" {
		return nil
	}
	m.log.Debug("TUI: User input", zap.String("input", input))

	out := command.Execute(m.session, m.active, input)
	if out.Quit {
		return tea.Quit
	}
	m.active = out.Active
	m.notice = ""
	switch {
	case out.Err != nil:
		m.session.SetStatus(format.Error(out.Err))
	case out.Message == command.Help:
		m.notice = command.Help
		m.session.SetStatus("Help shown in the results pane.")
	case out.Show:
		m.session.SetStatus("Form shown in the parameters pane.")
	default:
		m.session.SetStatus(out.Message)
	}
	return nil
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderResults(m.session.Snapshot()))
}

func calculatorLabel(c session.Calculator) string {
	if c == session.Digital {
		return "Digital"
	}
	return "Analog"
}

// --- VIEW ---
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	snap := m.session.Snapshot()
	topPanes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderParamsPane(snap),
		m.renderStatusPane(snap),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		topPanes,
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, c := range []session.Calculator{session.Analog, session.Digital} {
		label := calculatorLabel(c)
		if c == m.active {
			tabs = append(tabs, titleStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, append([]string{titleStyle.Render("⚡ PLC input configurator"), " "}, tabs...)...)
}

func (m Model) renderParamsPane(snap session.Snapshot) string {
	params := snap.AnalogParams
	title := "Signal conditioning"
	if m.active == session.Digital {
		params = snap.DigitalParams
		title = "Ratios and process data"
	}
	var content strings.Builder
	content.WriteString(titleStyle.Render(title) + "\n")
	for _, p := range params {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Left,
			fieldStyle.Render(p.Name),
			aliasStyle.Render(p.Alias),
			paramValStyle.Render(p.Value),
		) + "\n")
	}
	paneWidth := m.viewport.Width / 2
	return baseStyle.Width(paneWidth).Height(topPaneHeight - 2).Render(content.String())
}

func (m Model) renderStatusPane(snap session.Snapshot) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Status"),
		statusKeyStyle.Render("Version:    ")+version.Version,
		statusKeyStyle.Render("Calculator: ")+string(m.active),
		" ",
		statusKeyStyle.Render("Status:"),
		snap.Status,
	)
	leftPaneWidth := m.viewport.Width / 2
	rightPaneWidth := m.viewport.Width - leftPaneWidth - 4
	return baseStyle.Width(rightPaneWidth).Height(topPaneHeight - 2).Render(content)
}

func (m Model) renderResults(snap session.Snapshot) string {
	var content strings.Builder
	if m.notice != "" {
		content.WriteString(m.notice + "\n\n")
	}

	var (
		lines   []format.Line
		preview []format.Line
		err     error
	)
	switch m.active {
	case session.Analog:
		content.WriteString(titleStyle.Render("Analog results") + "\n")
		err = snap.AnalogErr
		if snap.LastAnalog != nil {
			lines = format.AnalogLines(*snap.LastAnalog)
			preview = format.AnalogPreview(snap.AnalogFrom, *snap.LastAnalog)
		}
	case session.Digital:
		content.WriteString(titleStyle.Render("Digital results") + "\n")
		err = snap.DigitalErr
		if snap.LastDigital != nil {
			lines = format.DigitalLines(*snap.LastDigital)
		}
	}

	if err != nil {
		content.WriteString(errorStyle.Render(format.Error(err)) + "\n")
		return content.String()
	}
	if lines == nil {
		content.WriteString(hintStyle.Render("Type 'calc' (or press c with the command bar blurred) to compute.") + "\n")
		return content.String()
	}
	for _, l := range lines {
		value := valueStyle.Render(l.Value)
		if l.Label == "Pulse weight" {
			value = weightStyle.Render(value)
		}
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, labelStyle.Render(l.Label), value) + "\n")
	}
	if len(preview) > 0 {
		content.WriteString("\n" + titleStyle.Render("Engineering value at loop current") + "\n")
		for _, l := range preview {
			content.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, labelStyle.Render(l.Label), valueStyle.Render(l.Value)) + "\n")
		}
	}
	return content.String()
}

func (m Model) renderFooter() string {
	help := "Tab switches calculator | (i) to input command | (c) to compute | (q) to quit"
	if m.textInput.Focused() {
		help = "Enter a command (help lists them) | Tab switches calculator | Esc to leave the command bar"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.textInput.View(),
		help,
	)
}
