//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

//
// SETS AND SLICES
//

// Span - the half-open interval [Start, End) of some slice
type Span struct {
	Start int
	End   int
}

// Spans - split [0, n) into at most `workers` contiguous spans; a worker writes results[s.Start:s.End] and so
// the output keeps the input order without any locking
func Spans(n int, workers int) []Span {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	size := (n + workers - 1) / workers
	var sp []Span
	for s := 0; s < n; s += size {
		sp = append(sp, Span{Start: s, End: min(s+size, n)})
	}
	return sp
}

// MergeCounts - fold a set of partial tallies into one
func MergeCounts[T comparable](parts []map[T]int) map[T]int {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	merged := make(map[T]int, total)
	for _, p := range parts {
		for k, v := range p {
			merged[k] += v
		}
	}
	return merged
}

// ArgMax - index of the largest value; the lowest index wins a tie; -1 if the slice is empty
func ArgMax(sl []float64) int {
	best := -1
	for i, v := range sl {
		if best == -1 || v > sl[best] {
			best = i
		}
	}
	return best
}
