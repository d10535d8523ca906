package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a greyed out main view
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Keep the popup tight, capped to the terminal with a small margin
	if width > 10 {
		popupStyle = popupStyle.MaxWidth(width - 4)
	}
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(StripANSI(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(base))
	for i, line := range base {
		out[i] = gray.Render(line)
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		row := y + i
		plain := base[row]
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := cutLeft(plain, x+lipgloss.Width(popupLine))
		out[row] = gray.Render(left) + popupLine + gray.Render(right)
	}

	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style sequences
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// cutLeft drops the first n cells of a plain string
func cutLeft(s string, n int) string {
	w := 0
	for i, r := range s {
		if w >= n {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}
