package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"filetable/internal/config"
	"filetable/internal/domain"
	"filetable/internal/notify"
	"filetable/internal/ui/input"
	inputtypes "filetable/internal/ui/input/types"
	"filetable/internal/ui/services/events"
	"filetable/internal/ui/services/navigation"
	"filetable/internal/ui/services/selection"
	"filetable/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    events.EventBus
	config *config.Config

	width  int
	height int
	help   help.Model
	keys   keyMap

	statusMessage string
	statusIsError bool
	showHelp      bool
	showReport    bool
	reportContent string

	// Services
	selection    *selection.Service
	navigator    *navigation.Service
	inputHandler *input.Handler
	inputCtx     *input.ModelContext
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	sink         notify.Sink

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over records. A nil sink falls back to the popup.
func NewModel(cfg *config.Config, bus events.EventBus, records []domain.FileRecord, sink notify.Sink) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if bus == nil {
		bus = events.NewBus()
	}
	if sink == nil {
		sink = &notify.Popup{}
	}

	keys := newKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		keys:         keys,
		selection:    selection.NewService(bus, records),
		navigator:    navigation.NewService(bus),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		sink:         sink,
	}

	m.navigator.SetQueryFunction(func() int {
		return len(m.selection.Files())
	})
	m.inputCtx = &input.ModelContext{
		Selection: m.selection,
		Navigator: m.navigator,
	}
	m.keys.syncDownload(false)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if pager, ok := m.sink.(*notify.Pager); ok {
		pager.SetTerminal(p)
	}
}

// Selection exposes the selection service
func (m *Model) Selection() *selection.Service {
	return m.selection
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetViewportHeight(msg.Height)

	case tea.KeyMsg:
		actions := m.inputHandler.HandleKey(msg, m.inputCtx)
		return m, m.processActions(actions)

	case reportDeliveredMsg:
		return m, m.handleReportDelivered(msg)
	}

	return m, nil
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.keys.syncDownload(m.selection.HasSelection())

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ToggleAction:
		m.toggle(a.Path)

	case inputtypes.ClickSelectAllAction:
		if m.selection.AvailableCount() == 0 {
			m.setStatus("No files are available to select", false)
			return nil
		}
		m.selection.ClickSelectAll()
		m.clearStatus()

	case inputtypes.DeselectAllAction:
		m.selection.DeselectAll()
		m.clearStatus()

	case inputtypes.DownloadAction:
		return m.download()

	case inputtypes.DismissReportAction:
		m.showReport = false
		m.reportContent = ""

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		log.Printf("Quit requested (force=%v)", a.Force)
		return tea.Quit
	}
	return nil
}

func (m *Model) toggle(path string) {
	if path == "" {
		return
	}
	if !m.selection.IsSelectable(path) {
		rec := m.selection.Index()[path]
		m.setStatus(fmt.Sprintf("%s is %s and cannot be selected", rec.Name, rec.Status), false)
		return
	}
	m.selection.Toggle(path)
	m.clearStatus()
}

// download hands the report for the current selection to the sink
func (m *Model) download() tea.Cmd {
	if !m.selection.HasSelection() {
		return nil
	}

	report := m.selection.Report()
	count := m.selection.Count()
	sink := m.sink
	log.Printf("Downloading %d files via %s", count, sink.Name())

	return func() tea.Msg {
		return reportDeliveredMsg{
			sink:   sink.Name(),
			report: report,
			count:  count,
			err:    sink.Notify(report),
		}
	}
}

func (m *Model) handleReportDelivered(msg reportDeliveredMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("Failed to deliver report via %s: %v", msg.sink, msg.err)
		m.setStatus(fmt.Sprintf("Download failed: %v", msg.err), true)
		return nil
	}

	switch msg.sink {
	case notify.SinkPopup:
		m.clearStatus()
		m.reportContent = msg.report
		m.showReport = true
		return m.processActions(m.inputHandler.ChangeMode(inputtypes.ModeReport, m.inputCtx))
	case notify.SinkClipboard:
		m.setStatus(fmt.Sprintf("Copied %d selected files to the clipboard", msg.count), false)
	case notify.SinkFile:
		target := "file"
		if f, ok := m.sink.(*notify.File); ok {
			target = f.Path()
		}
		m.setStatus(fmt.Sprintf("Wrote %d selected files to %s", msg.count, target), false)
	case notify.SinkStdout:
		m.setStatus(fmt.Sprintf("%d selected files will be printed on exit", msg.count), false)
	default:
		m.clearStatus()
	}
	return nil
}

func (m *Model) setStatus(text string, isError bool) {
	m.statusMessage = text
	m.statusIsError = isError
}

func (m *Model) clearStatus() {
	m.setStatus("", false)
}

func (m *Model) title() string {
	if m.config.UI.Title != "" {
		return m.config.UI.Title
	}
	return config.DefaultConfig().UI.Title
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	selected := m.selection.Selected()
	selectedSet := make(map[string]bool, len(selected))
	for _, path := range selected {
		selectedSet[path] = true
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.title(),
		Files:          m.selection.Files(),
		SelectedPaths:  selectedSet,
		SelectedCount:  len(selected),
		AvailableCount: m.selection.AvailableCount(),
		Cursor:         m.navigator.GetCursor(),
		ViewportOffset: m.navigator.GetViewportOffset(),
		ViewportHeight: m.navigator.GetViewportHeight(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		ShowHelpHint:   m.config.UI.ShowHelpHint,
		ShowHelp:       m.showHelp,
		ShowReport:     m.showReport,
		ReportContent:  m.reportContent,
		HelpModel:      m.help,
		KeyMap:         m.keys,
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.renderHelpContent(m.title())
	}

	return m.renderer.Render(state)
}
