package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filetable/internal/config"
	"filetable/internal/files"
	"filetable/internal/notify"
	"filetable/internal/ui/services/events"
	"filetable/internal/ui/services/selection"
	"filetable/internal/ui/views"
)

const (
	netshPath   = `\Device\HarddiskVolume2\Windows\System32\netsh.exe`
	uxthemePath = `\Device\HarddiskVolume1\Windows\System32\uxtheme.dll`
)

func newTestModel(t *testing.T, sink notify.Sink) *Model {
	t.Helper()
	m := NewModel(config.DefaultConfig(), events.NewBus(), files.Sample(), sink)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// press sends keys in order and runs any resulting command back through the model
func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		last = drain(m, cmd)
	}
	return last
}

// drain executes report deliveries synchronously. Other commands are returned.
func drain(m *Model, cmd tea.Cmd) tea.Cmd {
	for cmd != nil {
		msg := cmd()
		delivered, ok := msg.(reportDeliveredMsg)
		if !ok {
			return func() tea.Msg { return msg }
		}
		_, cmd = m.Update(delivered)
	}
	return nil
}

func plainView(m *Model) string {
	return views.StripANSI(m.View())
}

func headerLine(t *testing.T, view string) string {
	t.Helper()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Name") && strings.Contains(line, "Device") {
			return line
		}
	}
	require.Fail(t, "no header row in view", view)
	return ""
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := NewModel(nil, nil, files.Sample(), nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t, nil)
	view := plainView(m)

	assert.Contains(t, view, "File Selection Table")
	assert.Contains(t, view, "None Selected")
	assert.Contains(t, headerLine(t, view), "[ ]")
	assert.Equal(t, 2, m.Selection().AvailableCount())
}

func TestFiveRecordScenario(t *testing.T) {
	popup := &notify.Popup{}
	m := newTestModel(t, popup)

	// Row 2 is netsh.exe
	press(m, "j", "j", "space")
	view := plainView(m)
	assert.Contains(t, view, "Selected 1")
	assert.Contains(t, headerLine(t, view), "[-]")

	// Row 3 is uxtheme.dll
	press(m, "j", "space")
	view = plainView(m)
	assert.Contains(t, view, "Selected 2")
	assert.Contains(t, headerLine(t, view), "[x]")

	press(m, "d")
	want := "Path: " + netshPath + ", Device: Targaryen\nPath: " + uxthemePath + ", Device: Lannister"
	assert.Equal(t, want, popup.Last())
	assert.True(t, m.showReport)
	view = plainView(m)
	assert.Contains(t, view, "Path: "+netshPath+", Device: Targaryen")
	assert.Contains(t, view, "Path: "+uxthemePath+", Device: Lannister")

	// Keys are swallowed while the report is open
	press(m, "a")
	assert.Equal(t, 2, m.Selection().Count())

	press(m, "esc")
	assert.False(t, m.showReport)
	assert.Empty(t, m.reportContent)

	// Header click with everything selected clears the selection
	press(m, "a")
	view = plainView(m)
	assert.Contains(t, view, "None Selected")
	assert.Contains(t, headerLine(t, view), "[ ]")
}

func TestSelectAllFromPartial(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "j", "j", "space")
	require.Equal(t, 1, m.Selection().Count())

	press(m, "g", "g", "space")
	assert.Equal(t, []string{netshPath, uxthemePath}, m.Selection().Selected())
	assert.Equal(t, selection.ModeAll, m.Selection().Mode())
}

func TestToggleDisabledRowIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "j", "space")
	assert.Equal(t, 0, m.Selection().Count())
	assert.Contains(t, plainView(m), "smss.exe is scheduled and cannot be selected")

	// A successful toggle clears the message
	press(m, "j", "space")
	assert.NotContains(t, plainView(m), "cannot be selected")
}

func TestDownloadWithoutSelectionDoesNothing(t *testing.T) {
	popup := &notify.Popup{}
	m := newTestModel(t, popup)

	_, cmd := m.Update(keyMsg("d"))
	assert.Nil(t, cmd)
	assert.Empty(t, popup.Last())
	assert.False(t, m.showReport)
}

func TestEscClearsSelection(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "a")
	require.Equal(t, 2, m.Selection().Count())

	press(m, "esc")
	assert.Equal(t, 0, m.Selection().Count())
}

func TestFileSinkReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	m := newTestModel(t, notify.NewFile(path))

	press(m, "a", "d")
	assert.False(t, m.showReport, "only the popup sink opens the report")
	assert.Contains(t, plainView(m), "Wrote 2 selected files to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Path: "+netshPath+", Device: Targaryen\nPath: "+uxthemePath+", Device: Lannister\n",
		string(data))
}

type failingSink struct{}

func (failingSink) Name() string { return "failing" }

func (failingSink) Notify(string) error { return errors.New("disk full") }

func TestSinkFailureShowsError(t *testing.T) {
	m := newTestModel(t, failingSink{})

	press(m, "a", "d")
	assert.Contains(t, plainView(m), "Download failed: disk full")
	assert.True(t, m.statusIsError)
	assert.Equal(t, 2, m.Selection().Count(), "selection survives a failed download")
}

func TestHelpPopup(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "?")
	assert.True(t, m.showHelp)
	view := plainView(m)
	assert.Contains(t, view, "File Selection Table Help")
	assert.Contains(t, view, "download selected")

	// Table keys do nothing while help is open
	press(m, "a")
	assert.Equal(t, 0, m.Selection().Count())

	press(m, "?")
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSelectionEventsReachBus(t *testing.T) {
	bus := events.NewBus()
	var got []interface{}
	bus.Subscribe(events.TypeOf(selection.SelectionChangedEvent{}), func(e interface{}) {
		got = append(got, e)
	})

	m := NewModel(config.DefaultConfig(), bus, files.Sample(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	press(m, "j", "j", "space")

	require.Len(t, got, 1)
	assert.Equal(t, selection.SelectionChangedEvent{Added: []string{netshPath}, Total: 1}, got[0])
}

func TestConfiguredTitle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Title = "Quarantine"
	cfg.UI.ShowHelpHint = false
	m := NewModel(cfg, nil, files.Sample(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := plainView(m)
	assert.Contains(t, view, "Quarantine")
	assert.NotContains(t, view, "quit")
}
