package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary = lipgloss.Color("#7D56F4")
	Success = lipgloss.Color("#04B575")
	Error   = lipgloss.Color("#FF6B6B")
	Warning = lipgloss.Color("#FFCC00")
	Info    = lipgloss.Color("#5384FF")
	Muted   = lipgloss.Color("#6C6C6C")
	Border  = lipgloss.Color("#3C3C3C")
)

var (
	// TitleStyle for headings and list titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// HeadingStyle for section headers such as "Selected Options"
	HeadingStyle = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	// PromptStyle for questions
	PromptStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// DetailStyle for secondary lines
	DetailStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Warning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Info)

	// HelpStyle for keyboard hints
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// FocusedBorder for focused inputs
var FocusedBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(0, 1)

// BlurredBorder for unfocused inputs
var BlurredBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)
