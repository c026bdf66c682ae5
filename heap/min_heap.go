package heap

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/ecloudclub/zheap/option"
)

var (
	ErrHeapFull        = errors.New("zheap: heap is full")
	ErrHeapEmpty       = errors.New("zheap: heap is empty")
	ErrInvalidCapacity = errors.New("zheap: capacity must be positive")
)

// DefaultCapacity is the capacity used by the demonstration commands.
const DefaultCapacity = 15

// MinHeap is a binary min-heap stored in a fixed-size slice.
//
// Only the first Len() slots hold live elements; the rest of the backing
// slice is slack that push/pop never read. MinHeap is not safe for
// concurrent use.
type MinHeap[T cmp.Ordered] struct {
	items    []T
	size     int
	strategy PushStrategy
	out      io.Writer
	logger   *zap.Logger
}

// New returns an empty heap able to hold capacity elements.
func New[T cmp.Ordered](capacity int, opts ...option.Option[MinHeap[T]]) (*MinHeap[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	h := &MinHeap[T]{
		items:    make([]T, capacity),
		strategy: SiftUp,
		logger:   zap.NewNop(),
	}
	option.Apply(h, opts...)
	return h, nil
}

// WithOutput makes every Push and Pop write the whole backing slice,
// slack slots included, as one space separated line to w.
func WithOutput[T cmp.Ordered](w io.Writer) option.Option[MinHeap[T]] {
	return func(h *MinHeap[T]) {
		h.out = w
	}
}

// WithLogger sets the logger used for rejected operations and debug traces.
func WithLogger[T cmp.Ordered](l *zap.Logger) option.Option[MinHeap[T]] {
	return func(h *MinHeap[T]) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithPushStrategy selects how Push restores the heap property.
func WithPushStrategy[T cmp.Ordered](s PushStrategy) option.Option[MinHeap[T]] {
	return func(h *MinHeap[T]) {
		h.strategy = s
	}
}

// Push inserts v. It returns ErrHeapFull and leaves the heap untouched when
// Len() == Cap().
func (h *MinHeap[T]) Push(v T) error {
	if h.IsFull() {
		h.logger.Warn("push rejected", zap.Error(ErrHeapFull), zap.Any("value", v), zap.Int("capacity", h.Cap()))
		h.dump()
		return ErrHeapFull
	}

	h.items[h.size] = v
	h.size++
	switch h.strategy {
	case Rebuild:
		build(h.items, h.size, false)
	default:
		siftUp(h.items, h.size-1)
	}

	h.logger.Debug("push", zap.Any("value", v), zap.Int("size", h.size), zap.String("heap", h.String()))
	h.dump()
	return nil
}

// Pop removes and returns the minimum. On an empty heap it returns the zero
// value and ErrHeapEmpty.
func (h *MinHeap[T]) Pop() (T, error) {
	var zero T
	if h.IsEmpty() {
		h.logger.Warn("pop rejected", zap.Error(ErrHeapEmpty))
		h.dump()
		return zero, ErrHeapEmpty
	}

	top := h.items[0]
	h.items[0] = h.items[h.size-1]
	h.size--
	siftDown(h.items, 0, h.size, false)

	h.logger.Debug("pop", zap.Any("value", top), zap.Int("size", h.size), zap.String("heap", h.String()))
	h.dump()
	return top, nil
}

// Peek returns the minimum without removing it.
// The result is unspecified when the heap is empty, check IsEmpty first.
func (h *MinHeap[T]) Peek() T {
	return h.items[0]
}

func (h *MinHeap[T]) IsEmpty() bool {
	return h.size == 0
}

func (h *MinHeap[T]) IsFull() bool {
	return h.size == len(h.items)
}

// Len returns the number of live elements.
func (h *MinHeap[T]) Len() int {
	return h.size
}

// Cap returns the fixed capacity.
func (h *MinHeap[T]) Cap() int {
	return len(h.items)
}

// Items returns a copy of the live elements in heap (array) order.
func (h *MinHeap[T]) Items() []T {
	res := make([]T, h.size)
	copy(res, h.items[:h.size])
	return res
}

// String renders the whole backing slice, slack slots included.
func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for i, v := range h.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

func (h *MinHeap[T]) dump() {
	if h.out == nil {
		return
	}
	if _, err := fmt.Fprintln(h.out, h.String()); err != nil {
		h.logger.Error("write heap dump", zap.Error(err))
	}
}
