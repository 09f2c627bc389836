// Package internal holds helpers shared by the cpuid packages.
package internal

import (
	"iter"
)

// Concat2 chains key/value sequences, yielding each in turn. A key that
// appears in more than one sequence is yielded once per sequence, so a
// consumer that stores into a map sees later sequences override earlier.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
