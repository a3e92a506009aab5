package selection

// ChangeKind classifies what the store reported
type ChangeKind int

const (
	ChangeToggle ChangeKind = iota
	ChangeStructure
	ChangeData
)

// Change describes one cache update
type Change struct {
	Kind    ChangeKind
	Index   int // toggled or first affected row; -1 for a reset
	Checked bool
}

// State holds the checked row indexes
type State struct {
	Checked map[int]struct{}
}

func newState() *State {
	return &State{Checked: make(map[int]struct{})}
}
