package combo

import (
	"errors"
	"fmt"
	"strings"

	"multiselect/internal/logic"
)

var (
	// ErrConfiguration is returned for option values the control does not recognise
	ErrConfiguration = errors.New("configuration error")
	// ErrIndexOutOfRange is returned when an index does not name a current item
	ErrIndexOutOfRange = logic.ErrIndexOutOfRange
)

// ConfigurationError describes a rejected option value
type ConfigurationError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *ConfigurationError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, a := range e.Allowed {
		quoted[i] = "'" + a + "'"
	}
	return fmt.Sprintf("invalid %s %q: must be %s", e.Option, e.Value, strings.Join(quoted, " or "))
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// IndexError describes an index outside 0..Len-1
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
