package ir

import "testing"

func TestCompareRanks(t *testing.T) {
	ordered := []*Node{
		NewNull(),
		NewFalse(),
		NewTrue(),
		NewNumber(1),
		NewString("a"),
		NewRaw("1"),
		NewArray(),
		NewObject(),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(%s, %s) = %d, want < 0", ordered[i].Type, ordered[j].Type, got)
			case i > j && got <= 0:
				t.Errorf("Compare(%s, %s) = %d, want > 0", ordered[i].Type, ordered[j].Type, got)
			case i == j && got != 0:
				t.Errorf("Compare(%s, %s) = %d, want 0", ordered[i].Type, ordered[j].Type, got)
			}
		}
	}
}

func TestCompareValues(t *testing.T) {
	if Compare(NewNumber(1), NewNumber(2)) >= 0 {
		t.Error("1 should sort before 2")
	}
	if Compare(NewString("a"), NewString("b")) >= 0 {
		t.Error("a should sort before b")
	}
	if Compare(nil, NewNull()) >= 0 {
		t.Error("nil should sort before any node")
	}
	a := FromInts([]int{1, 2})
	b := FromInts([]int{1, 2, 3})
	if Compare(a, b) >= 0 {
		t.Error("shorter array should sort first")
	}
}

func TestEqualObjectsUnordered(t *testing.T) {
	a := NewObject()
	a.AddNumberToObject("x", 1)
	a.AddNumberToObject("y", 2)

	b := NewObject()
	b.AddNumberToObject("y", 2)
	b.AddNumberToObject("x", 1)

	if !Equal(a, b, true) {
		t.Error("objects with reordered members should be equal")
	}
	// Compare is positional, so ordering matters there.
	if Compare(a, b) == 0 {
		t.Error("Compare should distinguish member order")
	}
}

func TestEqualCase(t *testing.T) {
	a := NewObject()
	a.AddNumberToObject("Key", 1)
	b := NewObject()
	b.AddNumberToObject("key", 1)

	if Equal(a, b, true) {
		t.Error("case-sensitive Equal matched different key case")
	}
	if !Equal(a, b, false) {
		t.Error("case-insensitive Equal missed equivalent keys")
	}
}

func TestEqualArrays(t *testing.T) {
	if !Equal(FromInts([]int{1, 2}), FromInts([]int{1, 2}), true) {
		t.Error("equal arrays not equal")
	}
	if Equal(FromInts([]int{1, 2}), FromInts([]int{2, 1}), true) {
		t.Error("array order should matter")
	}
}

func TestHashAgreesWithEquality(t *testing.T) {
	a := NewObject()
	a.AddStringToObject("k", "v")
	b := NewObject()
	b.AddStringToObject("k", "v")

	if a.Hash() != b.Hash() {
		t.Error("equal trees hash differently")
	}
	b.AddNullToObject("extra")
	if a.Hash() == b.Hash() {
		t.Error("distinct trees share a hash")
	}
}
