package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"filetable/internal/domain"
	"filetable/internal/files"
	"filetable/internal/ui/services/selection"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Files          []domain.FileRecord
	SelectedPaths  map[string]bool
	SelectedCount  int
	AvailableCount int
	Cursor         int // 0 is the select-all control, rows start at 1
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	StatusIsError  bool
	ShowHelpHint   bool
	ShowHelp       bool
	HelpContent    string
	ShowReport     bool
	ReportContent  string
	HelpModel      help.Model
	KeyMap         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")

	content.WriteString(r.renderToolbar(state))
	content.WriteString("\n\n")

	if len(state.Files) == 0 {
		content.WriteString(r.renderHeaderRow(state, columnWidths{name: 4, device: 6, path: 4}))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("No files to show."))
	} else {
		content.WriteString(r.renderTable(state))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Hint is hidden while a popup is open
	helpText := ""
	if state.ShowHelpHint && !state.ShowHelp && !state.ShowReport {
		if state.KeyMap != nil {
			helpText = state.HelpModel.View(state.KeyMap)
		} else {
			helpText = r.styles.Help.Render("Press ? for help")
		}
	}

	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}

		paddingNeeded := availableLines - currentLines - lipgloss.Height(helpText)
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowReport {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderReport(state.ReportContent), state.Height, state.Width, r.styles.ReportBox)
	}

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// CounterText is the selection counter label
func CounterText(selected int) string {
	if selected == 0 {
		return "None Selected"
	}
	return fmt.Sprintf("Selected %d", selected)
}

// SelectAllGlyph renders the tri-state select-all checkbox
func SelectAllGlyph(selected, available int) string {
	checked, indeterminate := selection.CheckboxState(selected, available)
	switch {
	case checked:
		return "[x]"
	case indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// RowGlyph renders a row checkbox
func RowGlyph(selected, selectable bool) string {
	switch {
	case selected:
		return "[x]"
	case !selectable:
		return "[·]"
	default:
		return "[ ]"
	}
}

func (r *Renderer) renderToolbar(state ViewState) string {
	counter := r.styles.Counter.Render(CounterText(state.SelectedCount))

	button := r.styles.ButtonDisabled.Render("[ Download Selected ]")
	if state.SelectedCount > 0 {
		button = r.styles.Button.Render("[ Download Selected ]")
	}

	return counter + "   " + button
}

type columnWidths struct {
	name   int
	device int
	path   int
}

const (
	cursorWidth   = 2 // "> "
	checkboxWidth = 4 // "[x] "
	columnGap     = 2
	maxNameWidth  = 28
	maxDevWidth   = 18
	minPathWidth  = 8
)

// measureColumns sizes the columns to their content within the terminal width
func measureColumns(records []domain.FileRecord, width int) columnWidths {
	w := columnWidths{
		name:   runewidth.StringWidth("Name"),
		device: runewidth.StringWidth("Device"),
		path:   runewidth.StringWidth("Path"),
	}
	for _, rec := range records {
		w.name = max(w.name, runewidth.StringWidth(rec.Name))
		w.device = max(w.device, runewidth.StringWidth(rec.Device))
		w.path = max(w.path, runewidth.StringWidth(rec.Path))
	}
	w.name = min(w.name, maxNameWidth)
	w.device = min(w.device, maxDevWidth)

	if width <= 0 {
		width = 80
	}
	// Main container padding is 2 on each side
	room := width - 4 - cursorWidth - checkboxWidth - w.name - w.device - 2*columnGap
	w.path = max(min(w.path, room), minPathWidth)
	return w
}

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func (r *Renderer) renderHeaderRow(state ViewState, w columnWidths) string {
	marker := "  "
	glyph := SelectAllGlyph(state.SelectedCount, state.AvailableCount)
	if state.Cursor == 0 {
		marker = r.styles.Cursor.Render("> ")
		glyph = r.styles.Cursor.Render(glyph)
	}
	gap := strings.Repeat(" ", columnGap)
	columns := cell("Name", w.name) + gap + cell("Device", w.device) + gap + cell("Path", w.path)
	return marker + glyph + " " + r.styles.Header.Render(columns)
}

func (r *Renderer) renderTable(state ViewState) string {
	w := measureColumns(state.Files, state.Width)
	lines := []string{r.renderHeaderRow(state, w)}

	total := len(state.Files)
	height := state.ViewportHeight
	if height <= 0 {
		height = total
	}
	start := min(max(state.ViewportOffset, 0), total)
	end := min(start+height, total)

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(state, state.Files[i], i+1 == state.Cursor, w))
	}

	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRow(state ViewState, rec domain.FileRecord, isCursor bool, w columnWidths) string {
	isSelected := state.SelectedPaths[rec.Path]
	selectable := files.IsAvailable(rec.Status)

	gap := strings.Repeat(" ", columnGap)
	text := RowGlyph(isSelected, selectable) + " " +
		cell(rec.Name, w.name) + gap + cell(rec.Device, w.device) + gap + cell(rec.Path, w.path)

	style := lipgloss.NewStyle()
	switch {
	case isSelected:
		style = r.styles.SelectionBg
	case !selectable:
		style = r.styles.Disabled
	}
	if isCursor && !isSelected {
		style = style.Inherit(r.styles.HighlightBg)
	}

	marker := "  "
	if isCursor {
		marker = r.styles.Cursor.Render("> ")
	}
	return marker + style.Render(text)
}

func (r *Renderer) renderReport(report string) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Download Selected"))
	b.WriteString("\n\n")
	b.WriteString(report)
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("enter/esc to close"))
	return b.String()
}
