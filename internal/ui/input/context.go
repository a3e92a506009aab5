package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Cursor  int
	Rows    []int // visible rows; SelectAllRow marks the pseudo-item
	Checked int
	Open    bool
	Query   string
}

// SelectAllRow is the row value of the select-all pseudo-item
const SelectAllRow = -1

// CurrentIndex returns the cursor position within the visible rows
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalRows returns the number of visible rows
func (c *ModelContext) TotalRows() int {
	return len(c.Rows)
}

// HasSelection returns true if any items are checked
func (c *ModelContext) HasSelection() bool {
	return c.Checked > 0
}

// SelectedCount returns the number of checked items
func (c *ModelContext) SelectedCount() int {
	return c.Checked
}

// IsOnSelectAll reports whether the cursor is on the pseudo-item
func (c *ModelContext) IsOnSelectAll() bool {
	return c.Cursor >= 0 && c.Cursor < len(c.Rows) && c.Rows[c.Cursor] == SelectAllRow
}

func (c *ModelContext) PopupOpen() bool {
	return c.Open
}

func (c *ModelContext) FilterQuery() string {
	return c.Query
}
