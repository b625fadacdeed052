package blur

import "github.com/utkarsh5026/rowblur/internal/cpu"

// Priority is the scheduling hint applied to a worker's thread.
type Priority = cpu.Priority

const (
	PriorityBelow  = cpu.PriorityBelow
	PriorityNormal = cpu.PriorityNormal
	PriorityAbove  = cpu.PriorityAbove
)

// ParsePriority accepts below_normal/below/1, normal/2 and above_normal/above/3.
func ParsePriority(s string) (Priority, error) {
	return cpu.ParsePriority(s)
}
