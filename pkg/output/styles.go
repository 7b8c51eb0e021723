package output

import "github.com/charmbracelet/lipgloss"

// Color palette - Modern, balanced colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorError     = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorHighlight = lipgloss.Color("#06B6D4") // Cyan

	// Table row colors - hex format for consistency
	colorTableOdd  = lipgloss.Color("#FCFCFA") // Light gray
	colorTableEven = lipgloss.Color("#A0A0A0") // Medium gray
)

var (
	// successStyle renders success confirmations.
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// mutedStyle renders secondary information such as empty-diff notices.
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// detailLabelStyle renders the field labels of a detail view.
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)
)

// Table styles
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				Padding(0, 1)

	tableOddRowStyle = lipgloss.NewStyle().
				Foreground(colorTableOdd).
				Padding(0, 1)

	tableEvenRowStyle = lipgloss.NewStyle().
				Foreground(colorTableEven).
				Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)
)

// Tree styles
var (
	treeRootStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	treeGenerationStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	treeSpanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	treeEventStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	treeModelStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	treeMetaStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	treeEnumeratorStyle = lipgloss.NewStyle().
				Foreground(colorMuted)
)

// Diff styles
var (
	addedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	deletedStyle = lipgloss.NewStyle().
			Foreground(colorError)

	diffHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)
