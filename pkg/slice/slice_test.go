package slice

import "testing"

func TestReverseInPlace(t *testing.T) {
	s := []string{"Aarhus", "Anholt", "Sound", "Copenhagen"}
	ReverseInPlace(s)
	if Compare(s, []string{"Copenhagen", "Sound", "Anholt", "Aarhus"}) != 0 {
		t.Errorf("reversed slice is %v", s)
	}
	empty := []int{}
	ReverseInPlace(empty)
}

func TestCompare(t *testing.T) {
	if d := Compare([]int{1, 2, 3}, []int{1, 5, 3}); d != 1 {
		t.Errorf("differences: Is %v, should be 1", d)
	}
	if d := Compare([]int{1, 2}, []int{1, 2, 3}); d != -1 {
		t.Errorf("differences: Is %v, should be -1", d)
	}
}

func TestUnique(t *testing.T) {
	u := Unique([]string{"a", "b", "a", "c", "b"})
	if Compare(u, []string{"a", "b", "c"}) != 0 {
		t.Errorf("unique elements are %v", u)
	}
}
