package basin

import (
	"container/heap"
	"fmt"
	"sort"
)

// minHeap is a min-heap of ints for bounded top-k selection.
type minHeap []int

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Largest returns the k largest values of sizes, largest first.
// Duplicates count separately. sizes is not modified.
// Returns ErrInvalidK for k <= 0 and ErrInsufficientBasins if len(sizes) < k.
//
// Complexity: O(n log k) time, O(k) memory.
func Largest(sizes []int, k int) ([]int, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(sizes) < k {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBasins, len(sizes), k)
	}
	h := make(minHeap, 0, k)
	for _, s := range sizes {
		if h.Len() < k {
			heap.Push(&h, s)
		} else if s > h[0] {
			h[0] = s
			heap.Fix(&h, 0)
		}
	}
	top := []int(h)
	sort.Sort(sort.Reverse(sort.IntSlice(top)))
	return top, nil
}

// TopProduct multiplies the k largest values of sizes.
// Errors as Largest.
func TopProduct(sizes []int, k int) (int, error) {
	top, err := Largest(sizes, k)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, s := range top {
		product *= s
	}
	return product, nil
}
