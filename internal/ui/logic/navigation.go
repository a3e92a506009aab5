package logic

// Navigator handles cursor movement and viewport management over a flat list of rows
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.total = total
}

func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex moves the cursor, clamped to the rows, and returns the
// new cursor and viewport offset
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the cursor by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageSize is the distance of a page move; one row of overlap is kept
func (n *Navigator) PageSize() int {
	size := n.viewportHeight - 1
	if size < 1 {
		size = 1
	}
	return size
}

// GetMaxIndex returns the last row index, or -1 when there are no rows
func (n *Navigator) GetMaxIndex() int {
	return n.total - 1
}

func (n *Navigator) clamp() {
	if n.selectedIndex > n.total-1 {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	if n.viewportHeight <= 0 || n.total <= n.viewportHeight {
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	if maxOffset := n.total - n.viewportHeight; n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
