package preview

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the preview.
const (
	colorAccent    = "33"  // blue, headings and active tabs
	colorHighlight = "214" // amber, focus and selection
	colorMuted     = "241"
	colorText      = "252"
)

var styles = struct {
	Title    lipgloss.Style
	Pane     lipgloss.Style
	PaneOn   lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Box      lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Focus    lipgloss.Style
	Quote    lipgloss.Style
	Dot      lipgloss.Style
	DotOn    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Pane: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)).
		Padding(0, 1),
	PaneOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Underline(true).
		Padding(0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)).
		Padding(0, 1),
	TabOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(colorAccent)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(1, 2).
		MarginTop(1),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Focus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Quote: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colorText)),
	Dot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	DotOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	HelpSep: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
}
