package util

import (
	"iter"
)

func ConcatIter[A any](iter ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, thisIter := range iter {
			for v := range thisIter {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func SingleIter[A any](elem A) iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(elem)
	}
}

// MapErr applies f to every element of s in order and stops at the first error,
// which is returned as is. No partial result is returned on failure.
func MapErr[A, B any](s []A, f func(A) (B, error)) ([]B, error) {
	res := make([]B, 0, len(s))
	for _, a := range s {
		b, err := f(a)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, nil
}

// CartesianProduct returns every combination that picks one element of each of alternatives, in order.
//
// The result has the product of all the lengths as its size, so it grows exponentially with len(alternatives).
// Product of no alternatives is a single empty combination.
func CartesianProduct[A any](alternatives [][]A) [][]A {
	combinations := [][]A{{}}
	for _, alts := range alternatives {
		next := make([][]A, 0, len(combinations)*len(alts))
		for _, prefix := range combinations {
			for _, alt := range alts {
				combination := make([]A, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				next = append(next, append(combination, alt))
			}
		}
		combinations = next
	}
	return combinations
}

// ProductSize is len(CartesianProduct(alternatives)) without building it.
// It saturates at limit so that it cannot overflow for large inputs; a limit <= 0 means no saturation
func ProductSize[A any](alternatives [][]A, limit int) int {
	size := 1
	for _, alts := range alternatives {
		size *= len(alts)
		if limit > 0 && size > limit {
			return limit + 1
		}
	}
	return size
}
