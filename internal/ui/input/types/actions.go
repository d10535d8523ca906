package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleAction struct {
	Path string
}

func (a ToggleAction) Type() string { return "toggle" }

// ClickSelectAllAction is a click on the tri-state header control
type ClickSelectAllAction struct{}

func (a ClickSelectAllAction) Type() string { return "click_select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// DownloadAction reports the current selection to the notification sink
type DownloadAction struct{}

func (a DownloadAction) Type() string { return "download" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type DismissReportAction struct{}

func (a DismissReportAction) Type() string { return "dismiss_report" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
