package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is the scheduling priority hint given to a worker thread.
// The numeric values match the relative thread priority levels used by
// Windows (THREAD_PRIORITY_BELOW_NORMAL, _NORMAL, _ABOVE_NORMAL).
type Priority int

const (
	PriorityBelow  Priority = -1
	PriorityNormal Priority = 0
	PriorityAbove  Priority = 1
)

// String returns the canonical name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityBelow:
		return "below_normal"
	case PriorityNormal:
		return "normal"
	case PriorityAbove:
		return "above_normal"
	default:
		return "priority(" + strconv.Itoa(int(p)) + ")"
	}
}

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	return p >= PriorityBelow && p <= PriorityAbove
}

// ParsePriority accepts the level names and the menu numbers used by the
// command line prompt:
//
//	below_normal, below, 1
//	normal, 2
//	above_normal, above, 3
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "below_normal", "below", "1":
		return PriorityBelow, nil
	case "normal", "2":
		return PriorityNormal, nil
	case "above_normal", "above", "3":
		return PriorityAbove, nil
	default:
		return PriorityNormal, fmt.Errorf("unknown priority %q", s)
	}
}

// niceValue maps a priority onto a Unix nice increment.
func niceValue(p Priority) int {
	switch p {
	case PriorityBelow:
		return 5
	case PriorityAbove:
		return -5
	default:
		return 0
	}
}
