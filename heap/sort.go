package heap

import "cmp"

// Sort sorts nums in ascending order in place.
//
// A max-heap is built over the whole slice, then the root (the current
// maximum) is swapped into the tail slot that the shrinking heap vacates.
func Sort[T cmp.Ordered](nums []T) {
	sortHeap(nums, true)
}

// SortDesc sorts nums in descending order in place, using a min-heap and the
// same swap-with-tail technique.
func SortDesc[T cmp.Ordered](nums []T) {
	sortHeap(nums, false)
}

func sortHeap[T cmp.Ordered](nums []T, max bool) {
	n := len(nums)
	build(nums, n, max)
	for n > 1 {
		nums[0], nums[n-1] = nums[n-1], nums[0]
		n--
		siftDown(nums, 0, n, max)
	}
}
