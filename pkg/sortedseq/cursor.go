// pkg/sortedseq/cursor.go
package sortedseq

import "cmp"

// Iterator walks a contiguous run of a container in positional order,
// forward or reverse. It is single-pass and not restartable: once
// exhausted it stays exhausted. Mutating the container while an
// Iterator is outstanding is undefined behaviour, matching the
// package's single-owner, no-concurrency-safety contract.
type Iterator[V any] struct {
	chunks [][]V

	cur, end [2]int // [chunk, offset] cursor and exclusive/terminal bound
	reverse  bool

	value     V
	exhausted bool
}

func newIterator[V any](chunks [][]V, minPos, minIdx, maxPos, maxIdx int, reverse bool) *Iterator[V] {
	it := &Iterator[V]{chunks: chunks, reverse: reverse}

	if comparePair(minPos, minIdx, maxPos, maxIdx) >= 0 {
		it.exhausted = true
		return it
	}

	if reverse {
		it.cur = [2]int{maxPos, maxIdx}
		it.end = [2]int{minPos, minIdx}
	} else {
		it.cur = [2]int{minPos, minIdx}
		it.end = [2]int{maxPos, maxIdx}
	}
	return it
}

// Next advances the iterator and reports whether a value is available.
// Call Value to read it.
func (it *Iterator[V]) Next() bool {
	if it.exhausted {
		return false
	}

	if it.reverse {
		it.cur = it.stepBack(it.cur)
		if comparePair(it.cur[0], it.cur[1], it.end[0], it.end[1]) < 0 {
			it.exhausted = true
			return false
		}
		it.value = it.chunks[it.cur[0]][it.cur[1]]
		return true
	}

	if comparePair(it.cur[0], it.cur[1], it.end[0], it.end[1]) >= 0 {
		it.exhausted = true
		return false
	}
	it.value = it.chunks[it.cur[0]][it.cur[1]]
	it.cur = it.stepForward(it.cur)
	return true
}

// Value returns the element most recently yielded by Next.
func (it *Iterator[V]) Value() V { return it.value }

// Close releases resources held by the iterator. Iterators over
// in-memory chunks hold none; Close exists so callers can treat
// iteration uniformly with other cursor-shaped APIs.
func (it *Iterator[V]) Close() {}

func (it *Iterator[V]) stepForward(p [2]int) [2]int {
	pos, idx := p[0], p[1]+1
	for pos < len(it.chunks) && idx >= len(it.chunks[pos]) {
		pos++
		idx = 0
	}
	return [2]int{pos, idx}
}

func (it *Iterator[V]) stepBack(p [2]int) [2]int {
	pos, idx := p[0], p[1]-1
	for idx < 0 && pos > 0 {
		pos--
		idx = len(it.chunks[pos]) - 1
	}
	return [2]int{pos, idx}
}

func comparePair(pos1, idx1, pos2, idx2 int) int {
	if pos1 != pos2 {
		if pos1 < pos2 {
			return -1
		}
		return 1
	}
	return cmp.Compare(idx1, idx2)
}

// islice returns an iterator over the closed-open positional range
// [min_pos,min_idx) .. [max_pos,max_idx).
func (l *list[V, K]) islice(minPos, minIdx, maxPos, maxIdx int, reverse bool) *Iterator[V] {
	return newIterator(l.chunks, minPos, minIdx, maxPos, maxIdx, reverse)
}

// Islice returns an iterator over positional range [start, stop),
// clamped into [0, n) the way a Python slice would be.
func (l *list[V, K]) Islice(start, stop int, reverse bool) *Iterator[V] {
	if l.n == 0 {
		return newIterator[V](nil, 0, 0, 0, 0, false)
	}

	start = clampSliceIndex(start, l.n, 0)
	stop = clampSliceIndex(stop, l.n, l.n)

	if start >= stop {
		return newIterator[V](nil, 0, 0, 0, 0, false)
	}

	minPos, minIdx, _ := l.pos(start)

	var maxPos, maxIdx int
	if stop == l.n {
		maxPos = len(l.chunks) - 1
		maxIdx = len(l.chunks[maxPos])
	} else {
		maxPos, maxIdx, _ = l.pos(stop)
	}

	return l.islice(minPos, minIdx, maxPos, maxIdx, reverse)
}

func clampSliceIndex(i, n, def int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	} else if i > n {
		i = n
	}
	return i
}

// Bound describes one side of a value/key range for Irange: a pointer
// to the bound value (nil meaning unbounded) and whether it is
// inclusive.
type Bound[K any] struct {
	Value     *K
	Inclusive bool
}

// IrangeKeys returns an iterator over elements whose key falls within
// [min, max] (or the open variants selected by Inclusive).
func (l *list[V, K]) IrangeKeys(min, max Bound[K], reverse bool) *Iterator[V] {
	if len(l.maxes) == 0 {
		return newIterator[V](nil, 0, 0, 0, 0, false)
	}

	var minPos, minIdx int
	if min.Value == nil {
		minPos, minIdx = 0, 0
	} else {
		k := *min.Value
		if min.Inclusive {
			minPos, _ = bisectLeft(l.maxes, k)
			if minPos == len(l.maxes) {
				return newIterator[V](nil, 0, 0, 0, 0, false)
			}
			minIdx, _ = bisectLeft(l.keyChunks[minPos], k)
		} else {
			minPos, _ = bisectRight(l.maxes, k)
			if minPos == len(l.maxes) {
				return newIterator[V](nil, 0, 0, 0, 0, false)
			}
			minIdx, _ = bisectRight(l.keyChunks[minPos], k)
		}
	}

	var maxPos, maxIdx int
	if max.Value == nil {
		maxPos = len(l.maxes) - 1
		maxIdx = len(l.chunks[maxPos])
	} else {
		k := *max.Value
		if max.Inclusive {
			maxPos, _ = bisectRight(l.maxes, k)
			if maxPos == len(l.maxes) {
				maxPos--
				maxIdx = len(l.chunks[maxPos])
			} else {
				maxIdx, _ = bisectRight(l.keyChunks[maxPos], k)
			}
		} else {
			maxPos, _ = bisectLeft(l.maxes, k)
			if maxPos == len(l.maxes) {
				maxPos--
				maxIdx = len(l.chunks[maxPos])
			} else {
				maxIdx, _ = bisectLeft(l.keyChunks[maxPos], k)
			}
		}
	}

	return l.islice(minPos, minIdx, maxPos, maxIdx, reverse)
}
