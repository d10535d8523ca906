package selection

import (
	"filetable/internal/domain"
	"filetable/internal/files"
)

// State holds selection state for one file list
type State struct {
	Files          []domain.FileRecord
	ByPath         files.Index
	Available      map[string]bool // paths that may be selected
	AvailableCount int
	Selected       []string // selection order
	SelectedSet    map[string]bool
}

// Mode is the tri-state of the select-all control
type Mode int

const (
	ModeNone Mode = iota
	ModePartial
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModePartial:
		return "partial"
	case ModeAll:
		return "all"
	default:
		return "none"
	}
}

// DeriveMode computes the select-all mode from the selection size and the
// number of available files. Emptiness is checked first so that 0 of 0 is
// ModeNone rather than ModeAll.
func DeriveMode(selected, available int) Mode {
	if selected == 0 {
		return ModeNone
	}
	if selected == available {
		return ModeAll
	}
	return ModePartial
}

// Checkbox maps a mode onto a native tri-state checkbox
func (m Mode) Checkbox() (checked, indeterminate bool) {
	switch m {
	case ModeAll:
		return true, false
	case ModePartial:
		return false, true
	default:
		return false, false
	}
}

// CheckboxState is DeriveMode followed by Checkbox
func CheckboxState(selected, available int) (checked, indeterminate bool) {
	return DeriveMode(selected, available).Checkbox()
}

// Event types
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

type SelectionClearedEvent struct{}

type AllSelectedEvent struct {
	Paths []string
}

type FilesLoadedEvent struct {
	Total     int
	Available int
}
