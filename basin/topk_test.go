package basin

import (
	"errors"
	"sort"
	"testing"
)

// TestLargest covers ordering, duplicates and error cases.
func TestLargest(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
		k     int
		want  []int
		err   error
	}{
		{"Sample", []int{3, 9, 14, 9}, 3, []int{14, 9, 9}, nil},
		{"Exact", []int{2, 1, 3}, 3, []int{3, 2, 1}, nil},
		{"Duplicates", []int{5, 5, 5, 5}, 2, []int{5, 5}, nil},
		{"One", []int{4, 8, 1}, 1, []int{8}, nil},
		{"TooFew", []int{1, 2}, 3, nil, ErrInsufficientBasins},
		{"Empty", nil, 3, nil, ErrInsufficientBasins},
		{"ZeroK", []int{1}, 0, nil, ErrInvalidK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Largest(tc.sizes, tc.k)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Largest(%v, %d) error = %v; want %v", tc.sizes, tc.k, err, tc.err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Largest(%v, %d) = %v; want %v", tc.sizes, tc.k, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Largest(%v, %d) = %v; want %v", tc.sizes, tc.k, got, tc.want)
					break
				}
			}
		})
	}
}

// TestLargest_MatchesSort compares heap selection with a full sort.
func TestLargest_MatchesSort(t *testing.T) {
	sizes := []int{7, 3, 12, 1, 12, 5, 9, 0, 4, 11, 2}
	sorted := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for k := 1; k <= len(sizes); k++ {
		got, err := Largest(sizes, k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		for i := 0; i < k; i++ {
			if got[i] != sorted[i] {
				t.Fatalf("k=%d: got %v; want prefix of %v", k, got, sorted)
			}
		}
	}
	if sizes[0] != 7 || sizes[2] != 12 {
		t.Errorf("input was modified: %v", sizes)
	}
}

// TestTopProduct multiplies the selected sizes.
func TestTopProduct(t *testing.T) {
	p, err := TopProduct([]int{3, 9, 14, 9}, 3)
	if err != nil {
		t.Fatalf("TopProduct error: %v", err)
	}
	if p != 1134 {
		t.Errorf("TopProduct = %d; want 1134", p)
	}
	if _, err = TopProduct([]int{1}, 3); !errors.Is(err, ErrInsufficientBasins) {
		t.Errorf("TopProduct error = %v; want ErrInsufficientBasins", err)
	}
}
