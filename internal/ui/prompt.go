package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// ErrRequired is shown when a required input is left empty.
var ErrRequired = errors.New("this field is required")

// Navigation is how the user left a prompt.
type Navigation int

const (
	NavConfirm Navigation = iota // User confirmed selection/input
	NavBack                      // User pressed escape
	NavCancel                    // User cancelled (Ctrl+C)
)

// Result wraps a prompt's value with how the prompt was left.
type Result[T any] struct {
	Value T
	Nav   Navigation
}

// Confirmed reports whether the user confirmed.
func (r Result[T]) Confirmed() bool {
	return r.Nav == NavConfirm
}

// Value returns the confirmed value, or ErrCancelled.
func Value[T any](r Result[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	if !r.Confirmed() {
		var zero T
		return zero, ErrCancelled
	}
	return r.Value, nil
}

func run[M tea.Model](m M) (M, error) {
	model, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	return model.(M), nil
}

// SelectItem is one choice of a Select prompt.
type SelectItem[T any] struct {
	Title       string
	Description string
	Value       T
}

type itemWrapper[T any] struct {
	item SelectItem[T]
}

func (i itemWrapper[T]) FilterValue() string { return i.item.Title }
func (i itemWrapper[T]) Title() string       { return i.item.Title }
func (i itemWrapper[T]) Description() string { return i.item.Description }

type selectModel[T any] struct {
	list   list.Model
	done   bool
	result Result[T]
}

const selectPageSize = 8

func newSelectModel[T any](prompt string, items []SelectItem[T], initial T) *selectModel[T] {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = itemWrapper[T]{item: item}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(Primary).
		BorderForeground(Primary).
		Bold(true)

	l := list.New(listItems, delegate, 60, min(len(items), selectPageSize)+4)
	l.Title = prompt
	l.Styles.Title = TitleStyle
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(items) > selectPageSize)

	for i, item := range items {
		if fmt.Sprint(item.Value) == fmt.Sprint(initial) {
			l.Select(i)
			break
		}
	}
	return &selectModel[T]{list: l}
}

// Select shows a list and returns the chosen item's value.
func Select[T any](prompt string, items []SelectItem[T], initial T) (Result[T], error) {
	m, err := run(newSelectModel(prompt, items, initial))
	if err != nil {
		return Result[T]{Nav: NavCancel}, err
	}
	return m.result, nil
}

func (m *selectModel[T]) Init() tea.Cmd {
	return nil
}

func (m *selectModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if i, ok := m.list.SelectedItem().(itemWrapper[T]); ok {
				m.result = Result[T]{Value: i.item.Value, Nav: NavConfirm}
			}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			m.result = Result[T]{Nav: NavBack}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "q"))):
			m.result = Result[T]{Nav: NavCancel}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *selectModel[T]) View() string {
	if m.done {
		return ""
	}
	return m.list.View() + "\n" + HelpStyle.Render("↑/↓: Navigate  Enter: Select  Ctrl+C: Quit")
}

// InputOptions customizes an Input prompt.
type InputOptions struct {
	Placeholder string
	Initial     string
	Required    bool
	// Mask hides what is typed, for secrets.
	Mask     bool
	Validate func(string) error
}

type inputModel struct {
	textInput textinput.Model
	prompt    string
	opts      InputOptions
	err       error
	done      bool
	result    Result[string]
}

func newInputModel(prompt string, opts InputOptions) *inputModel {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.SetValue(opts.Initial)
	ti.Width = 50
	if opts.Mask {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()
	return &inputModel{textInput: ti, prompt: prompt, opts: opts}
}

// Input shows a single-line text prompt.
func Input(prompt string, opts InputOptions) (Result[string], error) {
	m, err := run(newInputModel(prompt, opts))
	if err != nil {
		return Result[string]{Nav: NavCancel}, err
	}
	return m.result, nil
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			value := m.textInput.Value()
			if m.opts.Required && value == "" {
				m.err = ErrRequired
				return m, nil
			}
			if m.opts.Validate != nil {
				if err := m.opts.Validate(value); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.result = Result[string]{Value: value, Nav: NavConfirm}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			m.result = Result[string]{Value: m.textInput.Value(), Nav: NavBack}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"))):
			m.result = Result[string]{Nav: NavCancel}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = nil
	return m, cmd
}

func (m *inputModel) View() string {
	if m.done {
		return ""
	}
	promptStyle := PromptStyle
	if m.err != nil {
		promptStyle = ErrorStyle
	}
	parts := []string{
		promptStyle.Render("? " + m.prompt),
		FocusedBorder.Render(m.textInput.View()),
	}
	if m.err != nil {
		parts = append(parts, ErrorStyle.Render("  "+m.err.Error()))
	}
	parts = append(parts, HelpStyle.Render("Enter: Confirm  Ctrl+C: Cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type confirmModel struct {
	prompt     string
	defaultYes bool
	done       bool
	result     Result[bool]
}

// Confirm shows a yes/no prompt.
func Confirm(prompt string, defaultYes bool) (Result[bool], error) {
	m, err := run(&confirmModel{prompt: prompt, defaultYes: defaultYes})
	if err != nil {
		return Result[bool]{Nav: NavCancel}, err
	}
	return m.result, nil
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("y", "Y"))):
		m.result = Result[bool]{Value: true, Nav: NavConfirm}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("n", "N"))):
		m.result = Result[bool]{Value: false, Nav: NavConfirm}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("enter"))):
		m.result = Result[bool]{Value: m.defaultYes, Nav: NavConfirm}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"))):
		m.result = Result[bool]{Nav: NavCancel}
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m *confirmModel) View() string {
	if m.done {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(Muted)
	yes, no := SuccessStyle.Render("Y"), muted.Render("n")
	if !m.defaultYes {
		yes, no = muted.Render("y"), SuccessStyle.Render("N")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		PromptStyle.Render("? "+m.prompt)+" ("+yes+"/"+no+")",
		HelpStyle.Render("y: Yes  n: No  Enter: Default"),
	)
}
