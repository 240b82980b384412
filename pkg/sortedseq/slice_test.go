// pkg/sortedseq/slice_test.go
package sortedseq

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtendedSliceAssignRollback(t *testing.T) {
	s := mustNew(t, 0)
	s.Update([]int{1, 3, 5, 7, 9})

	// container[::2] = [2, 10, 8] would produce [2,3,10,7,8] — 10 > 7
	// at the next position (3), violating order; must roll back whole.
	err := s.SetExtendedSlice(0, s.Len(), 2, []int{2, 10, 8})
	if !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("SetExtendedSlice = %v, want ErrOrderViolation", err)
	}

	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 3, 5, 7, 9}) {
		t.Fatalf("container mutated after rolled-back assignment: %v", got)
	}
}

func TestExtendedSliceAssignSucceeds(t *testing.T) {
	s := mustNew(t, 0)
	s.Update([]int{1, 3, 5, 7, 9})

	if err := s.SetExtendedSlice(0, s.Len(), 2, []int{0, 4, 8}); err != nil {
		t.Fatalf("SetExtendedSlice failed: %v", err)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{0, 3, 4, 7, 8}) {
		t.Fatalf("Values() = %v, want [0 3 4 7 8]", got)
	}
}

func TestExtendedSliceAssignLengthMismatch(t *testing.T) {
	s := mustNew(t, 0)
	s.Update([]int{1, 3, 5, 7, 9})

	if err := s.SetExtendedSlice(0, s.Len(), 2, []int{0, 4}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SetExtendedSlice with short values = %v, want ErrInvalidArgument", err)
	}
}

func TestDeleteExtendedSlice(t *testing.T) {
	s := mustNew(t, 0)
	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}
	s.Update(values)

	if err := s.DeleteExtendedSlice(0, s.Len(), 2); err != nil {
		t.Fatalf("DeleteExtendedSlice failed: %v", err)
	}

	want := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() after extended delete = %v, want %v", got, want)
	}
	if err := s.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestExtendedSliceAssignDescendingStepSucceeds(t *testing.T) {
	s := mustNew(t, 0)
	s.Update([]int{1, 2, 3, 4, 5})

	// Writing ascending positions in ascending order would reject this:
	// position 1 would be checked against position 2's stale value (3)
	// before position 2 is itself overwritten to 20. The end state
	// [1,10,20,30,40] is sorted throughout, so it must succeed.
	if err := s.SetExtendedSlice(4, 0, -1, []int{40, 30, 20, 10}); err != nil {
		t.Fatalf("SetExtendedSlice(4,0,-1,...) failed: %v", err)
	}
	want := []int{1, 10, 20, 30, 40}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	if err := s.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestSetReplacesElement(t *testing.T) {
	s := mustNew(t, 4)
	s.Update([]int{1, 3, 5, 7, 9})

	if err := s.Set(2, 4); err != nil {
		t.Fatalf("Set(2, 4) failed: %v", err)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 3, 4, 7, 9}) {
		t.Fatalf("Values() = %v, want [1 3 4 7 9]", got)
	}
}

func TestSetRejectsOrderViolation(t *testing.T) {
	s := mustNew(t, 4)
	s.Update([]int{1, 3, 5, 7, 9})

	if err := s.Set(1, 10); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("Set(1, 10) = %v, want ErrOrderViolation", err)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 3, 5, 7, 9}) {
		t.Fatalf("container mutated after rejected Set: %v", got)
	}
}

func TestSetSliceReplacesRange(t *testing.T) {
	s := mustNew(t, 4)
	s.Update([]int{1, 2, 3, 8, 9, 10})

	if err := s.SetSlice(2, 4, []int{4, 5, 6, 7}); err != nil {
		t.Fatalf("SetSlice failed: %v", err)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 2, 4, 5, 6, 7, 9, 10}) {
		t.Fatalf("Values() = %v", got)
	}
}
