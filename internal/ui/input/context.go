package input

import (
	"filetable/internal/ui/services/navigation"
	"filetable/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Selection *selection.Service
	Navigator *navigation.Service
}

// CurrentIndex returns the cursor position; 0 is the select-all control
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetCursor()
}

// OnSelectAll reports whether the cursor is on the select-all control
func (c *ModelContext) OnSelectAll() bool {
	return c.Navigator.OnHeader()
}

// CurrentPath returns the path of the file under the cursor
func (c *ModelContext) CurrentPath() string {
	row := c.Navigator.CurrentRow()
	records := c.Selection.Files()
	if row < 0 || row >= len(records) {
		return ""
	}
	return records[row].Path
}

// CurrentSelectable reports whether the file under the cursor can be selected
func (c *ModelContext) CurrentSelectable() bool {
	path := c.CurrentPath()
	return path != "" && c.Selection.IsSelectable(path)
}

// HasSelection returns true if any files are selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

// SelectedCount returns the number of selected files
func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count()
}
