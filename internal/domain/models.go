package domain

import "fmt"

// Role identifies a data slot on an item
type Role int

const (
	// RoleDisplay reads back the item's text
	RoleDisplay Role = 0
	// RoleUser is the default storage role for item data
	RoleUser Role = 256
)

// Item represents one selectable entry
type Item struct {
	Text    string
	Data    map[Role]any // role -> value
	Checked bool
	Enabled bool
}

// NewItem creates an enabled, unchecked item with data stored at RoleUser.
// A nil value falls back to the text.
func NewItem(text string, data any) Item {
	if data == nil {
		data = text
	}
	return Item{
		Text:    text,
		Data:    map[Role]any{RoleUser: data},
		Enabled: true,
	}
}

// Value returns the value stored at role. RoleDisplay always yields the text.
func (it Item) Value(role Role) any {
	if role == RoleDisplay {
		return it.Text
	}
	if v, ok := it.Data[role]; ok {
		return v
	}
	return nil
}

// Clone returns a copy that does not share the data map
func (it Item) Clone() Item {
	out := it
	if it.Data != nil {
		out.Data = make(map[Role]any, len(it.Data))
		for k, v := range it.Data {
			out.Data[k] = v
		}
	}
	return out
}

// Field selects whether role data or item text is produced
type Field int

const (
	ByData Field = iota
	ByText
)

// String returns the configuration literal for the field
func (f Field) String() string {
	if f == ByText {
		return "text"
	}
	return "data"
}

// ParseField converts a configuration literal into a Field
func ParseField(s string) (Field, error) {
	switch s {
	case "data":
		return ByData, nil
	case "text":
		return ByText, nil
	}
	return ByData, fmt.Errorf("unknown field %q", s)
}

// CheckState is the tri-state of the select-all pseudo-item
type CheckState int

const (
	Unchecked CheckState = iota
	PartiallyChecked
	Checked
)

func (s CheckState) String() string {
	switch s {
	case Checked:
		return "checked"
	case PartiallyChecked:
		return "partially checked"
	default:
		return "unchecked"
	}
}

// Option is a (text, data) pair for a checked item
type Option struct {
	Text string
	Data any
}
