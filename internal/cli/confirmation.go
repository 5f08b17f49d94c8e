package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	boxButtonOkay = iota
	boxButtonCancel
)

var (
	defaultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(1, 2)
	defaultButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 5)
)

type boxModel struct {
	CancelLabel     string
	Color           AnsiColor
	ConfirmLabel    string
	ForegroundColor AnsiColor
	Message         string
	Title           string
	Width           int

	cursor int // which button is selected
	choice int
}

func (m boxModel) GetChoice() int {
	return m.choice
}

func (m boxModel) Init() tea.Cmd {
	return nil
}

func (m *boxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < 1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == 0 {
				m.choice = boxButtonOkay
			} else {
				m.choice = boxButtonCancel
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			m.choice = boxButtonCancel
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m boxModel) View() string {
	boxStyle := defaultBoxStyle.BorderForeground(lipgloss.Color(m.Color)).Width(m.Width)

	buttonStyle := defaultButtonStyle.BorderForeground(lipgloss.Color(m.ForegroundColor))
	buttonSelectedStyle := buttonStyle.BorderStyle(lipgloss.ThickBorder())
	buttonSelectedWarning := buttonSelectedStyle.Background(lipgloss.Color(m.Color))

	okButtonStyle := buttonStyle
	cancelButtonStyle := buttonStyle

	if m.cursor == 0 {
		okButtonStyle = buttonSelectedWarning
	} else {
		cancelButtonStyle = buttonSelectedStyle
	}
	okButton := okButtonStyle.Render(m.ConfirmLabel)
	cancelButton := cancelButtonStyle.Render(m.CancelLabel)

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, okButton, "  ", cancelButton)

	titleStyle := lipgloss.NewStyle().Bold(true)

	return boxStyle.Render(fmt.Sprintf(
		"%s\n\n%s\n\n",
		titleStyle.Render(m.Title),
		m.Message,
	)+buttons) + "\n"
}

type ShowConfirmationOpts struct {
	ColorForeground AnsiColor
	ColorAccent     AnsiColor

	Title   string
	Message string

	ConfirmLabel     string
	CancelLabel      string
	IsConfirmDefault bool
}

func ShowConfirmation(opts ShowConfirmationOpts) error {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	if width > 72 {
		width = 72
	}
	accentColor := opts.ColorAccent
	if accentColor == "" {
		accentColor = AnsiBlue
	}
	foregroundColor := opts.ColorForeground
	if foregroundColor == "" {
		foregroundColor = AnsiWhite
	}
	cancelLabel := opts.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	confirmLabel := opts.ConfirmLabel
	if confirmLabel == "" {
		confirmLabel = "OK"
	}
	initialCursorPosition := 1
	if opts.IsConfirmDefault {
		initialCursorPosition = 0
	}
	model := boxModel{
		CancelLabel:     cancelLabel,
		Color:           accentColor,
		ConfirmLabel:    confirmLabel,
		ForegroundColor: foregroundColor,
		Message:         opts.Message,
		Title:           opts.Title,
		Width:           width,

		cursor: initialCursorPosition,
	}
	program := tea.NewProgram(&model)
	if _, err := program.Run(); err != nil {
		return err
	}
	if model.GetChoice() == boxButtonCancel {
		return ErrorUserCancelled
	}
	return nil
}

func ShowWarningWithConfirmation(message string) error {
	return ShowConfirmation(ShowConfirmationOpts{
		ColorAccent:     AnsiRed,
		ColorForeground: AnsiWhite,
		Title:           "WARNING",
		Message:         message,
		ConfirmLabel:    "OK",
		CancelLabel:     "Cancel",
	})
}
