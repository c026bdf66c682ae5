package heap

import "github.com/bytedance/sonic"

// Snapshot is a point-in-time copy of a MinHeap.
type Snapshot[T any] struct {
	Capacity int `json:"capacity"`
	Size     int `json:"size"`
	// Items holds the live elements in heap order.
	Items []T `json:"items"`
	// Slots holds the whole backing slice, slack included.
	Slots []T `json:"slots"`
}

func (h *MinHeap[T]) Snapshot() Snapshot[T] {
	slots := make([]T, len(h.items))
	copy(slots, h.items)
	return Snapshot[T]{
		Capacity: h.Cap(),
		Size:     h.size,
		Items:    h.Items(),
		Slots:    slots,
	}
}

// MarshalJSON encodes the heap as its Snapshot.
func (h *MinHeap[T]) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(h.Snapshot())
}
