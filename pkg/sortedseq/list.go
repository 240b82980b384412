// pkg/sortedseq/list.go
//
// Package sortedseq implements a sorted sequence container: an ordered
// multiset backed by a list of bounded sorted chunks, a maxes summary
// array for routing searches, and a lazily-built implicit segment tree
// for O(log n) positional access.
//
// The generic engine is list[V, K]: values of type V ordered by a key
// of type K produced by a projection function. List[V] is the plain
// variant (K == V, identity projection); KeyList[V, K] is the keyed
// variant, which caches the projected key alongside each value so the
// projection is never recomputed during a search.
package sortedseq

import (
	"cmp"
	"slices"
)

// DefaultLoad is the load factor used when a non-positive value is
// passed to a constructor.
const DefaultLoad = 1000

// MinLoad is the smallest load factor the container will accept.
const MinLoad = 4

// list is the shared engine behind List and KeyList. It is never used
// directly by callers; List and KeyList are thin, type-specialized
// wrappers around it.
type list[V comparable, K cmp.Ordered] struct {
	key func(V) K

	chunks    [][]V
	keyChunks [][]K
	maxes     []K

	// index is the dense array backing the implicit segment tree over
	// chunk lengths. An empty index means "stale, rebuild on demand".
	index  []int
	offset int

	n    int
	load int
	half int
	twice int
}

func newList[V comparable, K cmp.Ordered](key func(V) K, load int) (*list[V, K], error) {
	if load <= 0 {
		load = DefaultLoad
	}
	if load < MinLoad {
		return nil, ErrInvalidArgument
	}
	if load%2 != 0 {
		load++
	}
	return &list[V, K]{
		key:   key,
		load:  load,
		half:  load / 2,
		twice: load * 2,
	}, nil
}

func (l *list[V, K]) Len() int { return l.n }

// Clear removes every element, returning the container to the empty state.
func (l *list[V, K]) Clear() {
	l.n = 0
	l.chunks = nil
	l.keyChunks = nil
	l.maxes = nil
	l.index = nil
	l.offset = 0
}

// Add inserts val, preserving sort order. Equal-keyed elements already
// present are kept before the new one (bisect_right routing), so
// insertion order among ties is preserved.
func (l *list[V, K]) Add(val V) {
	k := l.key(val)

	if len(l.maxes) == 0 {
		l.chunks = append(l.chunks, []V{val})
		l.keyChunks = append(l.keyChunks, []K{k})
		l.maxes = append(l.maxes, k)
		l.n++
		return
	}

	pos, _ := bisectRight(l.maxes, k)

	if pos == len(l.maxes) {
		pos--
		l.maxes[pos] = k
		l.chunks[pos] = append(l.chunks[pos], val)
		l.keyChunks[pos] = append(l.keyChunks[pos], k)
	} else {
		idx, _ := bisectRight(l.keyChunks[pos], k)
		l.chunks[pos] = insertAt(l.chunks[pos], idx, val)
		l.keyChunks[pos] = insertAt(l.keyChunks[pos], idx, k)
	}

	l.expand(pos)
	l.n++
}

// expand splits chunk pos if it grew past twice the load factor, or
// maintains the index tree incrementally if the tree already exists.
func (l *list[V, K]) expand(pos int) {
	if len(l.chunks[pos]) > l.twice {
		tailVals := append([]V(nil), l.chunks[pos][l.load:]...)
		tailKeys := append([]K(nil), l.keyChunks[pos][l.load:]...)
		l.chunks[pos] = l.chunks[pos][:l.load]
		l.keyChunks[pos] = l.keyChunks[pos][:l.load]

		l.maxes[pos] = l.keyChunks[pos][len(l.keyChunks[pos])-1]

		l.chunks = insertAt(l.chunks, pos+1, tailVals)
		l.keyChunks = insertAt(l.keyChunks, pos+1, tailKeys)
		l.maxes = insertAt(l.maxes, pos+1, tailKeys[len(tailKeys)-1])

		l.index = nil
		return
	}

	if len(l.index) > 0 {
		child := l.offset + pos
		for child > 0 {
			l.index[child]++
			child = (child - 1) >> 1
		}
		l.index[0]++
	}
}

// Update bulk-loads values into the container, sorting them by key
// first. Small batches fall back to per-element Add, which is cheaper
// than a full rebuild; large batches re-sort everything and rebuild
// the chunk list from scratch.
func (l *list[V, K]) Update(values []V) {
	if len(values) == 0 {
		return
	}

	sorted := append([]V(nil), values...)
	slices.SortFunc(sorted, func(a, b V) int { return cmp.Compare(l.key(a), l.key(b)) })

	if len(l.maxes) > 0 {
		if len(sorted)*4 < l.n {
			for _, v := range sorted {
				l.Add(v)
			}
			return
		}
		for _, chunk := range l.chunks {
			sorted = append(sorted, chunk...)
		}
		slices.SortFunc(sorted, func(a, b V) int { return cmp.Compare(l.key(a), l.key(b)) })
		l.Clear()
	}

	l.loadChunks(sorted)
}

// loadChunks slices an already-sorted run of values into load-sized
// chunks and (re)builds maxes. The index tree is left stale.
func (l *list[V, K]) loadChunks(sorted []V) {
	for pos := 0; pos < len(sorted); pos += l.load {
		end := pos + l.load
		if end > len(sorted) {
			end = len(sorted)
		}
		chunk := append([]V(nil), sorted[pos:end]...)
		keys := make([]K, len(chunk))
		for i, v := range chunk {
			keys[i] = l.key(v)
		}
		l.chunks = append(l.chunks, chunk)
		l.keyChunks = append(l.keyChunks, keys)
		l.maxes = append(l.maxes, keys[len(keys)-1])
	}
	l.n = len(sorted)
	l.index = nil
}

// Extend appends values, which must already be non-decreasing by key
// and must not violate order at the join with the existing tail.
func (l *list[V, K]) Extend(values []V) error {
	if len(values) == 0 {
		return nil
	}

	for i := 1; i < len(values); i++ {
		if l.key(values[i-1]) > l.key(values[i]) {
			return ErrOrderViolation
		}
	}

	offset := 0
	lenChunksBefore := len(l.chunks)

	if len(l.maxes) > 0 {
		if l.key(values[0]) < l.keyChunks[len(l.keyChunks)-1][len(l.keyChunks[len(l.keyChunks)-1])-1] {
			return ErrOrderViolation
		}

		last := len(l.chunks) - 1
		if len(l.chunks[last]) < l.half {
			take := l.load
			if take > len(values) {
				take = len(values)
			}
			l.chunks[last] = append(l.chunks[last], values[:take]...)
			for _, v := range values[:take] {
				l.keyChunks[last] = append(l.keyChunks[last], l.key(v))
			}
			l.maxes[last] = l.keyChunks[last][len(l.keyChunks[last])-1]
			offset = take
		}
	}

	for idx := offset; idx < len(values); idx += l.load {
		end := idx + l.load
		if end > len(values) {
			end = len(values)
		}
		chunk := append([]V(nil), values[idx:end]...)
		keys := make([]K, len(chunk))
		for i, v := range chunk {
			keys[i] = l.key(v)
		}
		l.chunks = append(l.chunks, chunk)
		l.keyChunks = append(l.keyChunks, keys)
		l.maxes = append(l.maxes, keys[len(keys)-1])
	}

	if lenChunksBefore == len(l.chunks) && len(l.index) > 0 {
		child := len(l.index) - 1
		for child > 0 {
			l.index[child] += len(values)
			child = (child - 1) >> 1
		}
		l.index[0] += len(values)
	} else {
		l.index = nil
	}

	l.n += len(values)
	return nil
}

// Contains reports whether val (not merely its key) is present.
func (l *list[V, K]) Contains(val V) bool {
	if len(l.maxes) == 0 {
		return false
	}

	k := l.key(val)
	pos, _ := bisectLeft(l.maxes, k)
	if pos == len(l.maxes) {
		return false
	}

	idx, _ := bisectLeft(l.keyChunks[pos], k)
	for {
		if pos >= len(l.chunks) {
			return false
		}
		if idx >= len(l.chunks[pos]) {
			pos++
			idx = 0
			continue
		}
		if l.keyChunks[pos][idx] != k {
			return false
		}
		if l.chunks[pos][idx] == val {
			return true
		}
		idx++
	}
}

// Count returns the number of elements equal to val.
func (l *list[V, K]) Count(val V) int {
	if len(l.maxes) == 0 {
		return 0
	}

	k := l.key(val)
	pos, _ := bisectLeft(l.maxes, k)
	if pos == len(l.maxes) {
		return 0
	}
	idx, _ := bisectLeft(l.keyChunks[pos], k)

	count := 0
	for pos < len(l.chunks) {
		if idx >= len(l.chunks[pos]) {
			pos++
			idx = 0
			continue
		}
		if l.keyChunks[pos][idx] != k {
			break
		}
		if l.chunks[pos][idx] == val {
			count++
		}
		idx++
	}
	return count
}

// Discard removes the first occurrence of val, silently doing nothing
// if absent.
func (l *list[V, K]) Discard(val V) {
	pos, idx, ok := l.locateValue(val)
	if ok {
		l.delete(pos, idx)
	}
}

// Remove removes the first occurrence of val, reporting ErrNotFound if
// absent.
func (l *list[V, K]) Remove(val V) error {
	pos, idx, ok := l.locateValue(val)
	if !ok {
		return ErrNotFound
	}
	l.delete(pos, idx)
	return nil
}

// locateValue scans the equal-key run starting at bisect_left for an
// entry equal to val, distinguishing "same key" from "same value".
func (l *list[V, K]) locateValue(val V) (pos, idx int, ok bool) {
	if len(l.maxes) == 0 {
		return 0, 0, false
	}

	k := l.key(val)
	pos, _ = bisectLeft(l.maxes, k)
	if pos == len(l.maxes) {
		return 0, 0, false
	}
	idx, _ = bisectLeft(l.keyChunks[pos], k)

	for pos < len(l.chunks) {
		if idx >= len(l.chunks[pos]) {
			pos++
			idx = 0
			continue
		}
		if l.keyChunks[pos][idx] != k {
			return 0, 0, false
		}
		if l.chunks[pos][idx] == val {
			return pos, idx, true
		}
		idx++
	}
	return 0, 0, false
}

// delete removes the element at (pos, idx), merging or draining chunks
// per the load-factor discipline described in the package's design
// notes: merge-on-shrink, split-on-grow.
func (l *list[V, K]) delete(pos, idx int) {
	l.chunks[pos] = removeAt(l.chunks[pos], idx)
	l.keyChunks[pos] = removeAt(l.keyChunks[pos], idx)
	l.n--

	switch {
	case len(l.chunks[pos]) > l.half:
		l.maxes[pos] = l.keyChunks[pos][len(l.keyChunks[pos])-1]
		if len(l.index) > 0 {
			child := l.offset + pos
			for child > 0 {
				l.index[child]--
				child = (child - 1) >> 1
			}
			l.index[0]--
		}

	case len(l.chunks) > 1:
		if pos == 0 {
			pos++
		}
		prev := pos - 1
		l.chunks[prev] = append(l.chunks[prev], l.chunks[pos]...)
		l.keyChunks[prev] = append(l.keyChunks[prev], l.keyChunks[pos]...)
		l.maxes[prev] = l.keyChunks[prev][len(l.keyChunks[prev])-1]

		l.chunks = removeAt(l.chunks, pos)
		l.keyChunks = removeAt(l.keyChunks, pos)
		l.maxes = removeAt(l.maxes, pos)
		l.index = nil

		l.expand(prev)

	case len(l.chunks[pos]) > 0:
		l.maxes[pos] = l.keyChunks[pos][len(l.keyChunks[pos])-1]

	default:
		l.chunks = removeAt(l.chunks, pos)
		l.keyChunks = removeAt(l.keyChunks, pos)
		l.maxes = removeAt(l.maxes, pos)
		l.index = nil
	}
}

// BisectLeft returns the first positional index whose key is >= k.
func (l *list[V, K]) BisectLeft(k K) int {
	if len(l.maxes) == 0 {
		return 0
	}
	pos, _ := bisectLeft(l.maxes, k)
	if pos == len(l.maxes) {
		return l.n
	}
	idx, _ := bisectLeft(l.keyChunks[pos], k)
	return l.loc(pos, idx)
}

// BisectRight returns the first positional index whose key is > k.
func (l *list[V, K]) BisectRight(k K) int {
	if len(l.maxes) == 0 {
		return 0
	}
	pos, _ := bisectRight(l.maxes, k)
	if pos == len(l.maxes) {
		return l.n
	}
	idx, _ := bisectRight(l.keyChunks[pos], k)
	return l.loc(pos, idx)
}

// CountByKey counts elements whose key equals k, as the span between the
// bisect-right and bisect-left positions of k over maxes/chunks.
func (l *list[V, K]) CountByKey(k K) int {
	if len(l.maxes) == 0 {
		return 0
	}
	posLeft, _ := bisectLeft(l.maxes, k)
	if posLeft == len(l.maxes) {
		return 0
	}
	idxLeft, _ := bisectLeft(l.keyChunks[posLeft], k)
	posRight, _ := bisectRight(l.maxes, k)

	if posRight == len(l.maxes) {
		return l.n - l.loc(posLeft, idxLeft)
	}
	idxRight, _ := bisectRight(l.keyChunks[posRight], k)

	if posLeft == posRight {
		return idxRight - idxLeft
	}
	return l.loc(posRight, idxRight) - l.loc(posLeft, idxLeft)
}

// At returns the value at positional index idx (supports negative
// indices counting from the end).
func (l *list[V, K]) At(idx int) (V, error) {
	var zero V
	pos, off, err := l.pos(idx)
	if err != nil {
		return zero, err
	}
	return l.chunks[pos][off], nil
}

// Append adds val to the tail of the container, rejecting it if it
// would violate the sort order.
func (l *list[V, K]) Append(val V) error {
	if len(l.maxes) == 0 {
		l.chunks = [][]V{{val}}
		l.keyChunks = [][]K{{l.key(val)}}
		l.maxes = []K{l.key(val)}
		l.n = 1
		return nil
	}

	pos := len(l.chunks) - 1
	k := l.key(val)
	if k < l.keyChunks[pos][len(l.keyChunks[pos])-1] {
		return ErrOrderViolation
	}

	l.maxes[pos] = k
	l.chunks[pos] = append(l.chunks[pos], val)
	l.keyChunks[pos] = append(l.keyChunks[pos], k)
	l.n++
	l.expand(pos)
	return nil
}

// Insert places val at positional index idx, rejecting it if doing so
// would violate sort order relative to its neighbours.
func (l *list[V, K]) Insert(idx int, val V) error {
	if idx < 0 {
		idx += l.n
	}
	if idx < 0 {
		idx = 0
	}
	if idx > l.n {
		idx = l.n
	}

	k := l.key(val)

	if len(l.maxes) == 0 {
		l.chunks = [][]V{{val}}
		l.keyChunks = [][]K{{k}}
		l.maxes = []K{k}
		l.n = 1
		return nil
	}

	if idx == 0 {
		if k > l.keyChunks[0][0] {
			return ErrOrderViolation
		}
		l.chunks[0] = insertAt(l.chunks[0], 0, val)
		l.keyChunks[0] = insertAt(l.keyChunks[0], 0, k)
		l.expand(0)
		l.n++
		return nil
	}

	if idx == l.n {
		pos := len(l.chunks) - 1
		if l.keyChunks[pos][len(l.keyChunks[pos])-1] > k {
			return ErrOrderViolation
		}
		l.chunks[pos] = append(l.chunks[pos], val)
		l.keyChunks[pos] = append(l.keyChunks[pos], k)
		l.maxes[pos] = k
		l.expand(pos)
		l.n++
		return nil
	}

	pos, off, err := l.pos(idx)
	if err != nil {
		return err
	}

	var beforePos, beforeOff int
	if off-1 < 0 {
		beforePos = pos - 1
		beforeOff = len(l.chunks[beforePos]) - 1
	} else {
		beforePos = pos
		beforeOff = off - 1
	}

	before := l.keyChunks[beforePos][beforeOff]
	after := l.keyChunks[pos][off]
	if k < before || k > after {
		return ErrOrderViolation
	}

	l.chunks[pos] = insertAt(l.chunks[pos], off, val)
	l.keyChunks[pos] = insertAt(l.keyChunks[pos], off, k)
	l.expand(pos)
	l.n++
	return nil
}

// Pop removes and returns the value at positional index idx (default
// the last element when idx is -1).
func (l *list[V, K]) Pop(idx int) (V, error) {
	var zero V
	if l.n == 0 {
		return zero, ErrOutOfRange
	}

	pos, off, err := l.pos(idx)
	if err != nil {
		return zero, err
	}
	val := l.chunks[pos][off]
	l.delete(pos, off)
	return val, nil
}

// IndexOf returns the leftmost positional index of val within
// [start, stop). A negative stop counts back from the end as in a
// Python slice, so -1 stops before the last element; a stop below -n,
// or above n, searches to the end.
func (l *list[V, K]) IndexOf(val V, start, stop int) (int, error) {
	if start < 0 {
		start += l.n
	}
	if start < 0 {
		start = 0
	}
	if stop < 0 {
		stop += l.n
	}
	if stop > l.n || stop < 0 {
		stop = l.n
	}

	k := l.key(val)
	left := l.BisectLeft(k)
	right := l.BisectRight(k)

	for i := left; i < right; i++ {
		if i < start || i >= stop {
			continue
		}
		pos, off, err := l.pos(i)
		if err != nil {
			return 0, ErrNotFound
		}
		if l.chunks[pos][off] == val {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Values returns every value in sorted order as a new slice.
func (l *list[V, K]) Values() []V {
	out := make([]V, 0, l.n)
	for _, chunk := range l.chunks {
		out = append(out, chunk...)
	}
	return out
}

func insertAt[T any](s []T, pos int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func removeAt[T any](s []T, pos int) []T {
	copy(s[pos:], s[pos+1:])
	return s[:len(s)-1]
}

// bisectLeft returns the index of the first element >= x (and whether
// an exact match sits there).
func bisectLeft[K cmp.Ordered](s []K, x K) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && s[lo] == x
}

// bisectRight returns the index of the first element > x.
func bisectRight[K cmp.Ordered](s []K, x K) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] <= x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo > 0 && s[lo-1] == x
}
