// pkg/sortedseq/keylist.go
package sortedseq

import "cmp"

// KeyList is a sorted sequence of values ordered by a key projected
// from each value via a user-supplied function. Add places a new value
// after any existing values with an equal key; Update sorts its batch
// with an unstable sort, so the relative order of equal-keyed values it
// loads is not defined. Like List, it is not safe for concurrent
// use.
type KeyList[V comparable, K cmp.Ordered] struct {
	eng *list[V, K]
}

// NewKey builds an empty KeyList ordered by key(v). load has the same
// meaning as in New.
func NewKey[V comparable, K cmp.Ordered](key func(V) K, load int) (*KeyList[V, K], error) {
	if key == nil {
		return nil, ErrInvalidArgument
	}
	eng, err := newList(key, load)
	if err != nil {
		return nil, err
	}
	return &KeyList[V, K]{eng: eng}, nil
}

// Len returns the number of elements.
func (s *KeyList[V, K]) Len() int { return s.eng.Len() }

// Clear removes every element.
func (s *KeyList[V, K]) Clear() { s.eng.Clear() }

// Add inserts val in sorted position according to its projected key.
func (s *KeyList[V, K]) Add(val V) { s.eng.Add(val) }

// Update bulk-inserts values, which need not be pre-sorted.
func (s *KeyList[V, K]) Update(values []V) { s.eng.Update(values) }

// Extend appends values, whose keys must already be non-decreasing and
// must not precede the current tail's key.
func (s *KeyList[V, K]) Extend(values []V) error { return s.eng.Extend(values) }

// Append adds val at the tail, rejecting it if its key is smaller than
// the current last element's key.
func (s *KeyList[V, K]) Append(val V) error { return s.eng.Append(val) }

// Insert places val at positional index idx, rejecting it if that
// would break key order.
func (s *KeyList[V, K]) Insert(idx int, val V) error { return s.eng.Insert(idx, val) }

// Contains reports whether val (matched by value equality, not merely
// key equality) is present.
func (s *KeyList[V, K]) Contains(val V) bool { return s.eng.Contains(val) }

// Count returns how many elements equal val.
func (s *KeyList[V, K]) Count(val V) int { return s.eng.Count(val) }

// CountByKey returns how many elements have key k.
func (s *KeyList[V, K]) CountByKey(k K) int { return s.eng.CountByKey(k) }

// Discard removes the first occurrence of val, if any.
func (s *KeyList[V, K]) Discard(val V) { s.eng.Discard(val) }

// Remove removes the first occurrence of val, reporting ErrNotFound if
// absent.
func (s *KeyList[V, K]) Remove(val V) error { return s.eng.Remove(val) }

// Pop removes and returns the element at positional index idx.
func (s *KeyList[V, K]) Pop(idx int) (V, error) { return s.eng.Pop(idx) }

// At returns the element at positional index idx without removing it.
func (s *KeyList[V, K]) At(idx int) (V, error) { return s.eng.At(idx) }

// Set replaces the element at positional index idx with val, subject to
// the same key-order constraints as Insert against idx's neighbours.
func (s *KeyList[V, K]) Set(idx int, val V) error {
	return checkedSet(s.eng, idx, val)
}

// Index returns the leftmost positional index of val within
// [start, stop).
func (s *KeyList[V, K]) Index(val V, start, stop int) (int, error) {
	return s.eng.IndexOf(val, start, stop)
}

// BisectKeyLeft returns the first positional index whose key is >= k.
func (s *KeyList[V, K]) BisectKeyLeft(k K) int { return s.eng.BisectLeft(k) }

// BisectKeyRight returns the first positional index whose key is > k.
func (s *KeyList[V, K]) BisectKeyRight(k K) int { return s.eng.BisectRight(k) }

// Values returns every element in sorted order as a new slice.
func (s *KeyList[V, K]) Values() []V { return s.eng.Values() }

// Slice returns a copy of the elements in positional range [start, stop).
func (s *KeyList[V, K]) Slice(start, stop int) []V {
	it := s.eng.Islice(start, stop, false)
	var out []V
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// DeleteSlice removes every element in positional range [start, stop).
func (s *KeyList[V, K]) DeleteSlice(start, stop int) error {
	return deleteSlice(s.eng, start, stop)
}

// DeleteExtendedSlice removes the elements selected by start:stop:step.
func (s *KeyList[V, K]) DeleteExtendedSlice(start, stop, step int) error {
	return deleteExtendedSlice(s.eng, start, stop, step)
}

// SetSlice replaces positional range [start, stop) with values, whose
// keys must be non-decreasing and fit between the elements either side
// of the range, or ErrOrderViolation is returned and the container is
// left unchanged. len(values) need not match the range's length.
func (s *KeyList[V, K]) SetSlice(start, stop int, values []V) error {
	return setSlice(s.eng, start, stop, values)
}

// SetExtendedSlice assigns values one-to-one to the positions selected
// by start:stop:step, rolling back entirely on any order violation or
// length mismatch.
func (s *KeyList[V, K]) SetExtendedSlice(start, stop, step int, values []V) error {
	return setExtendedSlice(s.eng, start, stop, step, values)
}

// Iter returns a forward iterator over every element.
func (s *KeyList[V, K]) Iter() *Iterator[V] { return s.eng.Islice(0, s.eng.Len(), false) }

// ReverseIter returns a reverse iterator over every element.
func (s *KeyList[V, K]) ReverseIter() *Iterator[V] { return s.eng.Islice(0, s.eng.Len(), true) }

// Islice returns an iterator over positional range [start, stop).
func (s *KeyList[V, K]) Islice(start, stop int, reverse bool) *Iterator[V] {
	return s.eng.Islice(start, stop, reverse)
}

// IrangeKey returns an iterator over the key range described by min
// and max (either may have a nil Value, meaning unbounded).
func (s *KeyList[V, K]) IrangeKey(min, max Bound[K], reverse bool) *Iterator[V] {
	return s.eng.IrangeKeys(min, max, reverse)
}

// Concat returns a new KeyList containing every element of s followed
// by every element of other, re-sorted by key as a unit (mirroring the
// Python container's `+` operator, which concatenates then re-derives
// order).
func (s *KeyList[V, K]) Concat(other *KeyList[V, K]) (*KeyList[V, K], error) {
	out, err := NewKey(s.eng.key, s.eng.load)
	if err != nil {
		return nil, err
	}
	out.Update(s.Values())
	out.Update(other.Values())
	return out, nil
}

// Check audits the container's internal invariants and reports the
// first violation found.
func (s *KeyList[V, K]) Check() error { return s.eng.check() }
