// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	ColorBlue     = lipgloss.Color("39")
	ColorMagenta  = lipgloss.Color("201")
	ColorGreen    = lipgloss.Color("82")
	ColorYellow   = lipgloss.Color("228")
	ColorCyan     = lipgloss.Color("45")
	ColorGray     = lipgloss.Color("250")
	ColorWhite    = lipgloss.Color("15")
	ColorDarkGray = lipgloss.Color("240") // branches
)

var (
	RootStyle     = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)
	BranchStyle   = lipgloss.NewStyle().Foreground(ColorDarkGray)
	ListenerStyle = lipgloss.NewStyle().Foreground(ColorMagenta)
	RouteStyle    = lipgloss.NewStyle().Foreground(ColorYellow)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
)

// Tree returns a new tree with common styling applied
func Tree(root string) *tree.Tree {
	t := tree.New().Root(RootStyle.Render(root))
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, info string) *tree.Tree {
	root := HeaderStyle.Render(title)
	if info != "" {
		root = lipgloss.JoinHorizontal(lipgloss.Top, root, " ", InfoStyle.Render(info))
	}
	return tree.New().Root(root)
}

// KeyValue renders "key: value" with the value highlighted.
func KeyValue(key string, value any) string {
	return fmt.Sprintf("%s: %s", key, ValueStyle.Render(fmt.Sprint(value)))
}

// ListenerText styles a listener address
func ListenerText(text string) string {
	return ListenerStyle.Render(text)
}

// RouteText styles a route description
func RouteText(text string) string {
	return RouteStyle.Render(text)
}

// TruncateString truncates a string if it exceeds maxLength
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
