package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpSections names the groups returned by keyMap.FullHelp
var helpSections = []string{"Navigation", "Selection", "Other"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// renderHelpContent renders the help information for the popup
func (r *HelpRenderer) renderHelpContent(title string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	groups := r.keys.FullHelp()

	// Align descriptions across all sections
	keyWidth := 0
	for _, group := range groups {
		for _, b := range group {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(title + " Help"))
	help.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			help.WriteString("\n")
		}
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			help.WriteString(formatBinding(b, keyWidth, keyStyle, descStyle))
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("Scheduled files are shown as [·] and cannot be selected."))

	return help.String()
}

func formatBinding(b key.Binding, keyWidth int, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	pad := strings.Repeat(" ", keyWidth-lipgloss.Width(h.Key))
	return fmt.Sprintf("  %s%s  %s", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc))
}
