package host

import (
	"fmt"
	"strings"
)

// Priority orders listeners on a [Bus]. Listeners with a higher priority run
// first, so a listener at PriorityLowest sees the result of every other one.
type Priority int

const (
	PriorityHighest Priority = iota
	PriorityHigh
	PriorityNormal
	PriorityLow
	PriorityLowest

	priorityCount = int(PriorityLowest) + 1
)

var priorityNames = [priorityCount]string{"highest", "high", "normal", "low", "lowest"}

func (p Priority) Valid() bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// ParsePriority resolves a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for i, name := range priorityNames {
		if strings.EqualFold(name, s) {
			return Priority(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}
