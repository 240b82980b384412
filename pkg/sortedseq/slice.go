// pkg/sortedseq/slice.go
//
// Contiguous and extended (step != 1) slice get/set/delete, mirroring
// Python's slice-assignment semantics against a sorted sequence. A
// contiguous delete or replace is just a positional range removed (and
// optionally re-inserted) one position at a time, highest first. An extended
// slice touches a fixed, non-contiguous set of positions; deleting one
// must not corrupt the positions of the others, and setting one must
// never leave the container outside its sort invariant even if a
// later index in the same call would violate it.
package sortedseq

import "cmp"

func resolveSlice(n, start, stop, step int) (lo, hi, st int, count int) {
	if step == 0 {
		step = 1
	}
	st = step

	if st > 0 {
		lo = clampSliceIndex(start, n, 0)
		hi = clampSliceIndex(stop, n, n)
		if lo < hi {
			count = (hi-lo-1)/st + 1
		}
		return
	}

	lo = clampNegStep(start, n, n-1)
	hi = clampNegStep(stop, n, -1)
	if lo > hi {
		count = (lo-hi-1)/(-st) + 1
	}
	return
}

func clampNegStep(i, n, def int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return def
		}
		return i
	}
	if i >= n {
		return def
	}
	return i
}

// deleteSlice removes every element in positional range [start, stop).
func deleteSlice[V comparable, K cmp.Ordered](l *list[V, K], start, stop int) error {
	start = clampSliceIndex(start, l.n, 0)
	stop = clampSliceIndex(stop, l.n, l.n)
	if start >= stop {
		return nil
	}

	for i := stop - 1; i >= start; i-- {
		pos, off, err := l.pos(i)
		if err != nil {
			return err
		}
		l.delete(pos, off)
	}
	return nil
}

// deleteExtendedSlice removes the elements selected by start:stop:step
// (step != 1 allowed, including negative). Positions are deleted from
// highest to lowest so earlier deletions never shift the positions of
// elements still to be removed.
func deleteExtendedSlice[V comparable, K cmp.Ordered](l *list[V, K], start, stop, step int) error {
	if step == 0 {
		return ErrInvalidArgument
	}
	lo, hi, st, count := resolveSlice(l.n, start, stop, step)
	if count == 0 {
		return nil
	}

	positions := make([]int, count)
	cur := lo
	for i := 0; i < count; i++ {
		positions[i] = cur
		cur += st
	}
	_ = hi

	slicesSortDesc(positions)
	for _, p := range positions {
		pos, off, err := l.pos(p)
		if err != nil {
			return err
		}
		l.delete(pos, off)
	}
	return nil
}

func slicesSortDesc(s []int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] < v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// setSlice replaces positional range [start, stop) with values as a
// unit. values must be non-decreasing by key and fit between the element
// before start and the element at stop, or ErrOrderViolation is returned
// before anything is removed. The old range is then removed and values
// spliced in via Update; len(values) need not match the range's length.
func setSlice[V comparable, K cmp.Ordered](l *list[V, K], start, stop int, values []V) error {
	start = clampSliceIndex(start, l.n, 0)
	stop = max(clampSliceIndex(stop, l.n, l.n), start)
	var seq []V
	if start > 0 {
		before, _ := l.At(start - 1)
		seq = append(seq, before)
	}
	seq = append(seq, values...)
	if stop < l.n {
		after, _ := l.At(stop)
		seq = append(seq, after)
	}
	for i := 1; i < len(seq); i++ {
		if l.key(seq[i-1]) > l.key(seq[i]) {
			return ErrOrderViolation
		}
	}
	if err := deleteSlice(l, start, stop); err != nil {
		return err
	}
	l.Update(values)
	return nil
}

// setExtendedSlice assigns values to the positions selected by
// start:stop:step, one value per selected position — len(values) must
// equal the selection count. Matching Python's __setitem__ (sortedlist.py),
// every position is written unconditionally first; only once every
// write has landed is the whole selection validated against the fully
// written state. Checking order position-by-position against a
// partially written container would reject transformations that are
// only valid end-to-end — e.g. a step=-1 assignment that raises values
// at lower positions before their old, smaller neighbours have been
// overwritten. If validation fails anywhere, every position is restored
// to its journaled original value (all-or-nothing).
func setExtendedSlice[V comparable, K cmp.Ordered](l *list[V, K], start, stop, step int, values []V) error {
	if step == 0 {
		return ErrInvalidArgument
	}
	lo, _, st, count := resolveSlice(l.n, start, stop, step)
	if count != len(values) {
		return ErrInvalidArgument
	}
	if count == 0 {
		return nil
	}

	positions := make([]int, count)
	cur := lo
	for i := 0; i < count; i++ {
		positions[i] = cur
		cur += st
	}

	journal := make([]V, count)
	for i, p := range positions {
		val, err := l.At(p)
		if err != nil {
			return err
		}
		journal[i] = val
	}

	for i, p := range positions {
		if err := rawWrite(l, p, values[i]); err != nil {
			restoreJournal(l, positions, journal)
			return err
		}
	}

	for _, p := range positions {
		if err := validateNeighbors(l, p); err != nil {
			restoreJournal(l, positions, journal)
			return err
		}
	}
	return nil
}

// checkedSet writes val at positional index idx, rejecting it with
// ErrOrderViolation (and leaving the container unchanged) if it would
// break sort order against idx's immediate neighbours. Used for
// single-index assignment (List.Set, KeyList.Set).
func checkedSet[V comparable, K cmp.Ordered](l *list[V, K], idx int, val V) error {
	old, err := l.At(idx)
	if err != nil {
		return err
	}
	if err := rawWrite(l, idx, val); err != nil {
		return err
	}
	if err := validateNeighbors(l, idx); err != nil {
		rawWrite(l, idx, old)
		return err
	}
	return nil
}

// rawWrite writes val at positional index idx without validating order,
// updating maxes if idx is the last element of its chunk.
func rawWrite[V comparable, K cmp.Ordered](l *list[V, K], idx int, val V) error {
	pos, off, err := l.pos(idx)
	if err != nil {
		return err
	}
	l.chunks[pos][off] = val
	l.keyChunks[pos][off] = l.key(val)
	if off == len(l.chunks[pos])-1 {
		l.maxes[pos] = l.keyChunks[pos][off]
	}
	return nil
}

// validateNeighbors reports whether the element already written at idx
// is in key order relative to its immediate predecessor and successor
// in the container's current state.
func validateNeighbors[V comparable, K cmp.Ordered](l *list[V, K], idx int) error {
	pos, off, err := l.pos(idx)
	if err != nil {
		return err
	}
	k := l.keyChunks[pos][off]

	if pos > 0 || off > 0 {
		var beforeK K
		if off > 0 {
			beforeK = l.keyChunks[pos][off-1]
		} else {
			beforeK = l.keyChunks[pos-1][len(l.keyChunks[pos-1])-1]
		}
		if k < beforeK {
			return ErrOrderViolation
		}
	}

	isLast := off == len(l.chunks[pos])-1 && pos == len(l.chunks)-1
	if !isLast {
		var afterK K
		if off+1 < len(l.keyChunks[pos]) {
			afterK = l.keyChunks[pos][off+1]
		} else {
			afterK = l.keyChunks[pos+1][0]
		}
		if k > afterK {
			return ErrOrderViolation
		}
	}
	return nil
}

// restoreJournal writes every journaled original value back in place,
// unconditionally, undoing a setExtendedSlice attempt in full.
func restoreJournal[V comparable, K cmp.Ordered](l *list[V, K], positions []int, journal []V) {
	for i, p := range positions {
		rawWrite(l, p, journal[i])
	}
}
