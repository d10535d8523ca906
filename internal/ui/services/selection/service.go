package selection

import (
	"filetable/internal/domain"
	"filetable/internal/files"
	"filetable/internal/ui/services/events"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service over records
func NewService(bus events.EventBus, records []domain.FileRecord) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	s := &Service{bus: bus}
	s.SetFiles(records)
	return s
}

// SetFiles replaces the file list. Derived lookups are rebuilt and the
// selection starts over empty.
func (s *Service) SetFiles(records []domain.FileRecord) {
	available := make(map[string]bool)
	for _, path := range files.AvailablePaths(records) {
		available[path] = true
	}

	s.state = &State{
		Files:          records,
		ByPath:         files.NewIndex(records),
		Available:      available,
		AvailableCount: len(available),
		Selected:       []string{},
		SelectedSet:    make(map[string]bool),
	}

	s.bus.Publish(FilesLoadedEvent{
		Total:     len(records),
		Available: s.state.AvailableCount,
	})
}

// Toggle flips the selection of path. Paths that are not available in the
// current list are ignored; the return value reports whether anything changed.
func (s *Service) Toggle(path string) bool {
	if !s.state.Available[path] {
		return false
	}

	var added, removed []string

	if s.state.SelectedSet[path] {
		delete(s.state.SelectedSet, path)
		s.state.Selected = without(s.state.Selected, path)
		removed = append(removed, path)
	} else {
		s.state.SelectedSet[path] = true
		s.state.Selected = append(s.state.Selected, path)
		added = append(added, path)
	}

	s.bus.Publish(SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Selected),
	})
	return true
}

// SelectAll replaces the selection with every available path
func (s *Service) SelectAll() {
	paths := files.AvailablePaths(s.state.Files)

	s.state.Selected = paths
	s.state.SelectedSet = make(map[string]bool, len(paths))
	for _, path := range paths {
		s.state.SelectedSet[path] = true
	}

	s.bus.Publish(AllSelectedEvent{
		Paths: append([]string(nil), paths...),
	})
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	s.state.Selected = []string{}
	s.state.SelectedSet = make(map[string]bool)

	s.bus.Publish(SelectionClearedEvent{})
}

// ClickSelectAll applies a click on the select-all control: a full selection
// is cleared, anything else becomes a full selection.
func (s *Service) ClickSelectAll() {
	if s.Mode() == ModeAll {
		s.DeselectAll()
		return
	}
	s.SelectAll()
}

// Mode returns the tri-state of the select-all control
func (s *Service) Mode() Mode {
	return DeriveMode(len(s.state.Selected), s.state.AvailableCount)
}

// IsSelected checks if a path is selected
func (s *Service) IsSelected(path string) bool {
	return s.state.SelectedSet[path]
}

// IsSelectable checks if a path belongs to an available file
func (s *Service) IsSelectable(path string) bool {
	return s.state.Available[path]
}

// Selected returns the selected paths in selection order
func (s *Service) Selected() []string {
	return append([]string(nil), s.state.Selected...)
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Selected) > 0
}

// AvailableCount returns the number of selectable files
func (s *Service) AvailableCount() int {
	return s.state.AvailableCount
}

// Files returns the current file list
func (s *Service) Files() []domain.FileRecord {
	return s.state.Files
}

// Index returns the path lookup for the current file list
func (s *Service) Index() files.Index {
	return s.state.ByPath
}

// Report formats the current selection, one line per selected file
func (s *Service) Report() string {
	return files.BuildReport(s.state.ByPath, s.state.Selected)
}

func without(paths []string, path string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != path {
			out = append(out, p)
		}
	}
	return out
}
