package navigation

import (
	"filetable/internal/ui/services/events"
)

// reservedLines is the screen height taken by everything except file rows
const reservedLines = 12

// Service handles all navigation logic
type Service struct {
	state   *State
	bus     events.EventBus
	queryFn func() int // Function to get max index
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Cursor:         HeaderIndex,
			ViewportOffset: 0,
			ViewportHeight: 20, // Default, will be updated
			MaxIndex:       0,
		},
		bus: bus,
	}
}

// SetQueryFunction sets the function to query max index
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
	s.refreshMax()
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// OnHeader reports whether the cursor is on the select-all control
func (s *Service) OnHeader() bool {
	return s.state.Cursor == HeaderIndex
}

// CurrentRow returns the zero based file row under the cursor, or -1 on the header
func (s *Service) CurrentRow() int {
	return s.state.Cursor - 1
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height from the terminal height
func (s *Service) SetViewportHeight(height int) {
	effectiveHeight := height - reservedLines
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.ViewportHeight = effectiveHeight
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refreshMax()
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveTo(s.state.Cursor - 1)
	case DirectionDown:
		s.moveTo(s.state.Cursor + 1)
	case DirectionPageUp:
		s.moveTo(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.moveTo(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.moveTo(HeaderIndex)
	case DirectionEnd:
		s.moveTo(s.state.MaxIndex)
	}

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// Reset puts the cursor back on the select-all control
func (s *Service) Reset() {
	s.refreshMax()
	s.state.Cursor = HeaderIndex
	s.state.ViewportOffset = 0
}

func (s *Service) moveTo(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) refreshMax() {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
}

// Helper methods
func (s *Service) clampIndex(index int) int {
	if index < HeaderIndex {
		return HeaderIndex
	}
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	row := s.CurrentRow()
	offset := s.state.ViewportOffset

	if s.OnHeader() {
		offset = 0
	} else if row < offset {
		offset = row
	} else if row >= offset+s.state.ViewportHeight {
		offset = row - s.state.ViewportHeight + 1
	}

	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
