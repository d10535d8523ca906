package navigation

// State holds all navigation-related state.
// Cursor 0 is the select-all control; file rows start at 1.
type State struct {
	Cursor         int
	ViewportOffset int // first file row shown, zero based
	ViewportHeight int // file rows that fit on screen
	MaxIndex       int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// HeaderIndex is the cursor position of the select-all control
const HeaderIndex = 0

// Event types for navigation changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}
