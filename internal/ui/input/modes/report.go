package modes

import (
	"filetable/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// ReportMode is active while the download report popup is shown
type ReportMode struct{}

func NewReportMode() *ReportMode {
	return &ReportMode{}
}

func (m *ReportMode) Name() string {
	return "report"
}

func (m *ReportMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ReportMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.DismissReportAction{}}
}

func (m *ReportMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "q", " ", "space":
		// Acknowledge the report and return to the table
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else so the table cannot change under the popup
	return nil, true
}

// HelpMode is active while the help popup is shown
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "?", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, true
}
