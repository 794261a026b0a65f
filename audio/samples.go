// SPDX-License-Identifier: EPL-2.0

package audio

import "iter"

// Samples exposes src as a range-over-func sequence.
//
// The sequence is driven by src.Next and shares its position: breaking out of
// a range loop and ranging again continues where the first loop stopped, it
// does not start over.
func Samples(src Source) iter.Seq[int16] {
	return func(yield func(int16) bool) {
		for {
			v, ok := src.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains up to limit samples from src. A limit <= 0 drains the whole
// stream, which only terminates for finite sources.
func Collect(src Source, limit int) []int16 {
	var out []int16
	if limit > 0 {
		out = make([]int16, 0, min(limit, 4096))
	}

	for v := range Samples(src) {
		out = append(out, v)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out
}
