package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer giving a total order over nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberKind:
		return cmp.Compare(a.Float64, b.Float64)
	case StringKind, RawKind:
		return strings.Compare(a.Str, b.Str)
	case ArrayKind:
		return compareChildren(a, b, false)
	case ObjectKind:
		return compareChildren(a, b, true)
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: Null < False < True < Number < String < Raw < Array < Object
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case FalseKind:
		return 1
	case TrueKind:
		return 2
	case NumberKind:
		return 3
	case StringKind:
		return 4
	case RawKind:
		return 5
	case ArrayKind:
		return 6
	case ObjectKind:
		return 7
	}
	return 100
}

func compareChildren(a, b *Node, keyed bool) int {
	ca, cb := a.Child, b.Child
	for ca != nil && cb != nil {
		if keyed {
			if c := strings.Compare(ca.Key, cb.Key); c != 0 {
				return c
			}
		}
		if c := Compare(ca, cb); c != 0 {
			return c
		}
		ca = ca.Next
		cb = cb.Next
	}
	if ca != nil {
		return 1
	}
	if cb != nil {
		return -1
	}
	return 0
}

// Equal reports deep equality in the document sense: object members
// are matched by key lookup rather than position, so two objects with
// the same members in a different order are equal. caseSensitive
// selects which key lookup is used.
func Equal(a, b *Node, caseSensitive bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NumberKind:
		return a.Float64 == b.Float64
	case StringKind, RawKind:
		return a.Str == b.Str
	case ArrayKind:
		ca, cb := a.Child, b.Child
		for ca != nil && cb != nil {
			if !Equal(ca, cb, caseSensitive) {
				return false
			}
			ca = ca.Next
			cb = cb.Next
		}
		return ca == nil && cb == nil
	case ObjectKind:
		if a.ArraySize() != b.ArraySize() {
			return false
		}
		for ca := a.Child; ca != nil; ca = ca.Next {
			cb := b.ObjectItem(ca.Key)
			if caseSensitive {
				cb = b.ObjectItemCS(ca.Key)
			}
			if !Equal(ca, cb, caseSensitive) {
				return false
			}
		}
		return true
	}
	return true
}
