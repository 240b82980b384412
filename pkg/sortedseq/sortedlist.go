// pkg/sortedseq/sortedlist.go
package sortedseq

import "cmp"

// List is a sorted sequence of values ordered by their natural
// ordering (cmp.Compare). It is not safe for concurrent use: callers
// owning a List must serialize access themselves, exactly like a plain
// Go slice.
type List[V cmp.Ordered] struct {
	eng *list[V, V]
}

// New builds an empty List. load controls the chunk size bound: chunks
// are kept in [load/2, load*2] elements. Pass 0 to use DefaultLoad. An
// odd load is rounded up to the next even number; a load below MinLoad
// reports ErrInvalidArgument.
func New[V cmp.Ordered](load int) (*List[V], error) {
	eng, err := newList(identity[V], load)
	if err != nil {
		return nil, err
	}
	return &List[V]{eng: eng}, nil
}

func identity[V cmp.Ordered](v V) V { return v }

// Len returns the number of elements.
func (s *List[V]) Len() int { return s.eng.Len() }

// Clear removes every element.
func (s *List[V]) Clear() { s.eng.Clear() }

// Add inserts val in sorted position.
func (s *List[V]) Add(val V) { s.eng.Add(val) }

// Update bulk-inserts values, which need not be pre-sorted.
func (s *List[V]) Update(values []V) { s.eng.Update(values) }

// Extend appends values, which must already be sorted and must not
// precede the current tail, or ErrOrderViolation is returned.
func (s *List[V]) Extend(values []V) error { return s.eng.Extend(values) }

// Append adds val at the tail, rejecting it with ErrOrderViolation if
// it is smaller than the current last element.
func (s *List[V]) Append(val V) error { return s.eng.Append(val) }

// Insert places val at positional index idx, rejecting it with
// ErrOrderViolation if that would break sort order.
func (s *List[V]) Insert(idx int, val V) error { return s.eng.Insert(idx, val) }

// Contains reports whether val is present.
func (s *List[V]) Contains(val V) bool { return s.eng.Contains(val) }

// Count returns how many elements equal val.
func (s *List[V]) Count(val V) int { return s.eng.Count(val) }

// Discard removes the first occurrence of val, if any.
func (s *List[V]) Discard(val V) { s.eng.Discard(val) }

// Remove removes the first occurrence of val, reporting ErrNotFound if
// absent.
func (s *List[V]) Remove(val V) error { return s.eng.Remove(val) }

// Pop removes and returns the element at positional index idx. Passing
// -1 pops the last element.
func (s *List[V]) Pop(idx int) (V, error) { return s.eng.Pop(idx) }

// At returns the element at positional index idx without removing it.
// Negative indices count from the end.
func (s *List[V]) At(idx int) (V, error) { return s.eng.At(idx) }

// Set replaces the element at positional index idx with val, subject
// to the same order constraints as Insert against idx's neighbours.
func (s *List[V]) Set(idx int, val V) error {
	return checkedSet(s.eng, idx, val)
}

// Index returns the leftmost positional index of val within
// [start, stop). A negative stop counts back from the end (-1 stops
// before the last element); pass Len() to search through the end.
func (s *List[V]) Index(val V, start, stop int) (int, error) {
	return s.eng.IndexOf(val, start, stop)
}

// BisectLeft returns the first positional index whose value is >= val.
func (s *List[V]) BisectLeft(val V) int { return s.eng.BisectLeft(val) }

// BisectRight returns the first positional index whose value is > val.
func (s *List[V]) BisectRight(val V) int { return s.eng.BisectRight(val) }

// Values returns every element in sorted order as a new slice.
func (s *List[V]) Values() []V { return s.eng.Values() }

// Slice returns a copy of the elements in positional range [start, stop).
func (s *List[V]) Slice(start, stop int) []V {
	it := s.eng.Islice(start, stop, false)
	var out []V
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// DeleteSlice removes every element in positional range [start, stop).
func (s *List[V]) DeleteSlice(start, stop int) error {
	return deleteSlice(s.eng, start, stop)
}

// DeleteExtendedSlice removes the elements selected by start:stop:step,
// where step may be any non-zero value (including negative).
func (s *List[V]) DeleteExtendedSlice(start, stop, step int) error {
	return deleteExtendedSlice(s.eng, start, stop, step)
}

// SetSlice replaces positional range [start, stop) with values, which
// must be sorted and fit between the elements either side of the range,
// or ErrOrderViolation is returned and the container is left unchanged.
// len(values) need not match the range's length.
func (s *List[V]) SetSlice(start, stop int, values []V) error {
	return setSlice(s.eng, start, stop, values)
}

// SetExtendedSlice assigns values one-to-one to the positions selected
// by start:stop:step. len(values) must equal the selection size, and
// every assignment must preserve sort order against its neighbours, or
// the whole call is rolled back and ErrOrderViolation/ErrInvalidArgument
// is returned.
func (s *List[V]) SetExtendedSlice(start, stop, step int, values []V) error {
	return setExtendedSlice(s.eng, start, stop, step, values)
}

// Iter returns a forward iterator over every element.
func (s *List[V]) Iter() *Iterator[V] { return s.eng.Islice(0, s.eng.Len(), false) }

// ReverseIter returns a reverse iterator over every element.
func (s *List[V]) ReverseIter() *Iterator[V] { return s.eng.Islice(0, s.eng.Len(), true) }

// Islice returns an iterator over positional range [start, stop),
// optionally reversed.
func (s *List[V]) Islice(start, stop int, reverse bool) *Iterator[V] {
	return s.eng.Islice(start, stop, reverse)
}

// Irange returns an iterator over the value range described by min and
// max (either may have a nil Value, meaning unbounded).
func (s *List[V]) Irange(min, max Bound[V], reverse bool) *Iterator[V] {
	return s.eng.IrangeKeys(min, max, reverse)
}

// Concat returns a new List containing every element of s followed by
// every element of other, re-sorted as a unit (mirroring the Python
// container's `+` operator, which concatenates then re-derives order).
func (s *List[V]) Concat(other *List[V]) (*List[V], error) {
	out, err := New[V](s.eng.load)
	if err != nil {
		return nil, err
	}
	out.Update(s.Values())
	out.Update(other.Values())
	return out, nil
}

// Equal reports whether s and other contain the same elements in the
// same order.
func (s *List[V]) Equal(other *List[V]) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.Values(), other.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Check audits the container's internal invariants (chunk bounds,
// maxes consistency, sortedness, index-tree correctness when built)
// and reports the first violation found. It is intended for use in
// tests, not production call paths.
func (s *List[V]) Check() error { return s.eng.check() }
