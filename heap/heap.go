package heap

import "cmp"

// Heapify 通用堆化（支持最大/最小堆，迭代式下沉）
// It rearranges nums in place so that nums[0] is the minimum (max == false)
// or the maximum (max == true). Running it on a slice that already satisfies
// the heap property performs no swaps.
func Heapify[T cmp.Ordered](nums []T, max bool) {
	build(nums, len(nums), max)
}

// BuildMin rearranges nums into a min-heap.
func BuildMin[T cmp.Ordered](nums []T) {
	build(nums, len(nums), false)
}

// BuildMax rearranges nums into a max-heap.
func BuildMax[T cmp.Ordered](nums []T) {
	build(nums, len(nums), true)
}

// build heapifies the first n elements of nums, starting from the last
// non-leaf node n/2-1 and walking back to the root.
func build[T cmp.Ordered](nums []T, n int, max bool) {
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(nums, i, n, max)
	}
}

// 迭代式下沉（替代递归）
// Only strictly smaller (or larger) children displace the candidate, so on a
// tie the parent stays put and the left child wins over the right one.
func siftDown[T cmp.Ordered](nums []T, i, n int, max bool) {
	for {
		left := 2*i + 1
		right := 2*i + 2
		candidate := i

		if max { // 最大堆
			if left < n && nums[left] > nums[candidate] {
				candidate = left
			}
			if right < n && nums[right] > nums[candidate] {
				candidate = right
			}
		} else { // 最小堆
			if left < n && nums[left] < nums[candidate] {
				candidate = left
			}
			if right < n && nums[right] < nums[candidate] {
				candidate = right
			}
		}

		if candidate == i {
			return
		}
		nums[i], nums[candidate] = nums[candidate], nums[i]
		i = candidate
	}
}

// siftUp moves nums[i] toward the root while its parent is strictly larger.
func siftUp[T cmp.Ordered](nums []T, i int) {
	for i > 0 {
		p := parent(i)
		if nums[p] <= nums[i] {
			return
		}
		nums[i], nums[p] = nums[p], nums[i]
		i = p
	}
}

func parent(i int) int { return (i - 1) / 2 }

// IsMinHeap reports whether every parent in nums is <= its children.
func IsMinHeap[T cmp.Ordered](nums []T) bool {
	return isHeap(nums, false)
}

// IsMaxHeap reports whether every parent in nums is >= its children.
func IsMaxHeap[T cmp.Ordered](nums []T) bool {
	return isHeap(nums, true)
}

func isHeap[T cmp.Ordered](nums []T, max bool) bool {
	for i := 1; i < len(nums); i++ {
		p := parent(i)
		if max && nums[p] < nums[i] {
			return false
		}
		if !max && nums[p] > nums[i] {
			return false
		}
	}
	return true
}
