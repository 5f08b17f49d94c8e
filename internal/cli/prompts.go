package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiBlue))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiGray))
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()
)

type PromptOpts struct {
	Title   string
	Buttons []PromptButton
	Inputs  []PromptInput
}

// CreatePrompt builds an interactive form from the provided inputs.
// Inputs that already carry a value are resolved immediately and are
// not shown to the user.
func CreatePrompt(opts PromptOpts) *PromptModel {
	m := PromptModel{
		buttons:           opts.Buttons,
		inputs:            []textinput.Model{},
		inputPrompts:      []PromptInput{},
		inputReverseIndex: map[int]string{},
		outputs:           map[string]string{},
	}
	if opts.Title != "" {
		m.title = &opts.Title
	}

	inputLength := 0
	for _, input := range opts.Inputs {
		if input.Value != "" {
			m.outputs[input.Id] = input.Value
			continue
		}
		m.inputReverseIndex[inputLength] = input.Id
		inputLength++
		m.inputPrompts = append(m.inputPrompts, input)
	}
	m.inputs = make([]textinput.Model, inputLength)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.Width = 64
		t.CharLimit = 256
		t.Placeholder = m.inputPrompts[i].Placeholder
		if m.inputPrompts[i].Type == PromptPassword {
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '*'
		}
		if i == 0 {
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		}
		m.inputs[i] = t
	}

	return &m
}

type PromptExitCode int

const (
	PromptCompleted PromptExitCode = 0
	PromptCancelled PromptExitCode = 1
)

type PromptModel struct {
	focusIndex int

	buttons           []PromptButton
	inputs            []textinput.Model
	inputPrompts      []PromptInput
	inputReverseIndex map[int]string
	isQuitting        bool
	outputs           map[string]string
	title             *string

	exitCode PromptExitCode
}

func (m PromptModel) GetExitCode() PromptExitCode {
	return m.exitCode
}

func (m PromptModel) GetValue(id string) string {
	return m.outputs[id]
}

func (m PromptModel) getTotalItemsCount() int {
	return len(m.buttons) + len(m.inputs)
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		m.exitCode = PromptCompleted
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.exitCode = PromptCancelled
			m.isQuitting = true
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down", "left", "right":
			s := msg.String()

			if s == "enter" && m.focusIndex >= len(m.inputs) {
				m.buttons[m.focusIndex-len(m.inputs)].Handle(m)
				m.isQuitting = true
				return m, tea.Quit
			}

			if s == "left" {
				if m.focusIndex >= len(m.inputs) {
					m.focusIndex--
				} else {
					break
				}
			} else if s == "right" {
				if m.focusIndex >= len(m.inputs) {
					m.focusIndex++
				} else {
					break
				}
			} else if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > m.getTotalItemsCount()-1 {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = m.getTotalItemsCount() - 1
			}

			cmds := make([]tea.Cmd, m.getTotalItemsCount())
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *PromptModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m PromptModel) View() string {
	var b strings.Builder

	if m.title != nil {
		fmt.Fprintf(&b, "%s\n\n", *m.title)
	}

	if len(m.inputs) > 0 {
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			if i < len(m.inputs)-1 {
				b.WriteRune('\n')
			}
		}

		if !m.isQuitting {
			if len(m.buttons) > 0 {
				fmt.Fprintf(&b, "\n\n")
				for i := range m.buttons {
					fmt.Fprintf(&b, "%s\t", m.buttons[i].Render(m.focusIndex == len(m.inputs)+i))
				}
				fmt.Fprintf(&b, "\n")
			}
		} else {
			fmt.Fprintf(&b, "\n")
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}

type PromptButtonType string

const (
	PromptButtonCancel PromptButtonType = "cancel"
	PromptButtonSubmit PromptButtonType = "submit"
)

type PromptButton struct {
	Label string
	Type  PromptButtonType
}

func (pb *PromptButton) Handle(m *PromptModel) {
	switch pb.Type {
	case PromptButtonCancel:
		m.exitCode = PromptCancelled
	case PromptButtonSubmit:
		for i, input := range m.inputs {
			m.outputs[m.inputReverseIndex[i]] = input.Value()
		}
		m.exitCode = PromptCompleted
	}
}

func (pb *PromptButton) Render(isSelected bool) string {
	if isSelected {
		return focusedStyle.Render(fmt.Sprintf("[ %s ]", pb.Label))
	}
	return fmt.Sprintf("[ %s ]", blurredStyle.Render(pb.Label))
}

type PromptInputType string

const (
	PromptString   PromptInputType = "string"
	PromptPassword PromptInputType = "password"
)

type PromptInput struct {
	Id          string
	Type        PromptInputType
	Placeholder string
	Value       string
}
