package collections

import "testing"

func TestSetToggle(t *testing.T) {
	set := NewSet[int]()

	if present := set.Toggle(3); !present {
		t.Fatalf("expected 3 to be present after first toggle")
	}
	if !set.Contains(3) {
		t.Errorf("expected set to contain 3")
	}
	if present := set.Toggle(3); present {
		t.Fatalf("expected 3 to be absent after second toggle")
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d elements", set.Len())
	}
}

func TestSetDifference(t *testing.T) {
	a := NewSet(1, 2, 3, 4)
	b := NewSet(3, 4, 5)

	diff := a.Difference(b)
	if diff.Len() != 2 || !diff.Contains(1) || !diff.Contains(2) {
		t.Errorf("unexpected difference %v", diff)
	}
}

func TestSetClone(t *testing.T) {
	a := NewSet("x", "y")
	clone := a.Clone()
	clone.Add("z")

	if a.Contains("z") {
		t.Errorf("mutating clone must not affect original")
	}
	if clone.Len() != 3 {
		t.Errorf("expected clone to have 3 elements, got %d", clone.Len())
	}
}
