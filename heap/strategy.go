package heap

import "fmt"

// PushStrategy decides how Push restores the heap property after appending.
type PushStrategy uint8

const (
	// SiftUp bubbles the new element toward the root, O(log n).
	SiftUp PushStrategy = iota
	// Rebuild re-runs the bottom-up construction over every live element, O(n).
	Rebuild
)

func (s PushStrategy) String() string {
	switch s {
	case SiftUp:
		return "siftup"
	case Rebuild:
		return "rebuild"
	default:
		return fmt.Sprintf("PushStrategy(%d)", uint8(s))
	}
}

// ParseStrategy is the inverse of PushStrategy.String.
func ParseStrategy(s string) (PushStrategy, error) {
	switch s {
	case "siftup":
		return SiftUp, nil
	case "rebuild":
		return Rebuild, nil
	}
	return 0, fmt.Errorf("zheap: unknown push strategy %q", s)
}
