package option

// Option is a generic design for the Option pattern.
// T is normally the struct being configured, e.g. heap.MinHeap[int].
type Option[T any] func(t *T)

// Apply applies opts to t in order, so later options win.
func Apply[T any](t *T, opts ...Option[T]) {
	for _, opt := range opts {
		opt(t)
	}
}
