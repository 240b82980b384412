// pkg/sortedseq/keylist_test.go
package sortedseq

import (
	"errors"
	"reflect"
	"testing"
)

func TestKeyedVariant(t *testing.T) {
	s, err := NewKey(func(v string) int { return len(v) }, 4)
	if err != nil {
		t.Fatalf("NewKey failed: %v", err)
	}
	s.Update([]string{"bb", "aaa", "c"})

	if got := s.Values(); !reflect.DeepEqual(got, []string{"c", "bb", "aaa"}) {
		t.Fatalf("Values() = %v, want [c bb aaa]", got)
	}
	if got := s.BisectKeyLeft(2); got != 1 {
		t.Errorf("BisectKeyLeft(2) = %d, want 1", got)
	}

	two, three := 2, 3
	var got []string
	it := s.IrangeKey(Bound[int]{Value: &two, Inclusive: true}, Bound[int]{Value: &three, Inclusive: true}, false)
	for it.Next() {
		got = append(got, it.Value())
	}
	if want := []string{"bb", "aaa"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IrangeKey(2,3) = %v, want %v", got, want)
	}
}

func TestKeyedContainsDistinguishesValue(t *testing.T) {
	type item struct {
		id  int
		key int
	}
	s, err := NewKey(func(v item) int { return v.key }, 4)
	if err != nil {
		t.Fatalf("NewKey failed: %v", err)
	}

	a := item{id: 1, key: 5}
	b := item{id: 2, key: 5}
	s.Add(a)

	if s.Contains(b) {
		t.Error("Contains matched a distinct value sharing a's key")
	}
	if !s.Contains(a) {
		t.Error("Contains missed the actual stored value")
	}
	if s.CountByKey(5) != 1 {
		t.Errorf("CountByKey(5) = %d, want 1", s.CountByKey(5))
	}

	s.Add(b)
	if s.CountByKey(5) != 2 {
		t.Errorf("CountByKey(5) = %d, want 2 after adding second same-key item", s.CountByKey(5))
	}
}

func TestKeyedSetRejectsOrderViolation(t *testing.T) {
	s, err := NewKey(func(v int) int { return v }, 4)
	if err != nil {
		t.Fatalf("NewKey failed: %v", err)
	}
	s.Update([]int{1, 3, 5, 7, 9})

	if err := s.Set(2, 4); err != nil {
		t.Fatalf("Set(2, 4) failed: %v", err)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 3, 4, 7, 9}) {
		t.Fatalf("Values() = %v, want [1 3 4 7 9]", got)
	}

	if err := s.Set(1, 10); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("Set(1, 10) = %v, want ErrOrderViolation", err)
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{1, 3, 4, 7, 9}) {
		t.Fatalf("container mutated after rejected Set: %v", got)
	}
}

func TestKeyedConcat(t *testing.T) {
	a, err := NewKey(func(v int) int { return v }, 4)
	if err != nil {
		t.Fatalf("NewKey failed: %v", err)
	}
	a.Update([]int{5, 1, 3})

	b, err := NewKey(func(v int) int { return v }, 4)
	if err != nil {
		t.Fatalf("NewKey failed: %v", err)
	}
	b.Update([]int{9, 2, 6})

	c, err := a.Concat(b)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if got := c.Values(); !reflect.DeepEqual(got, []int{1, 2, 3, 5, 6, 9}) {
		t.Fatalf("Concat Values() = %v", got)
	}
}

func TestKeyedAppendOrderViolation(t *testing.T) {
	s, err := NewKey(func(v int) int { return v }, 4)
	if err != nil {
		t.Fatalf("NewKey failed: %v", err)
	}
	s.Update([]int{1, 2, 3})

	if err := s.Append(0); err == nil {
		t.Fatal("Append(0) after [1 2 3] should violate order")
	}
}
