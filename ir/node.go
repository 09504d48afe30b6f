package ir

import "math"

// Node is a single value in a JSON document. Arrays and objects hold
// their members as a doubly linked sibling sequence headed by Child;
// member order is insertion order and is never re-sorted.
type Node struct {
	Type Kind

	// Next and Prev place the node within its parent's sibling
	// sequence. A root node has no siblings.
	Next *Node
	Prev *Node
	// Child heads the sibling sequence of an Array or Object.
	Child *Node

	// Key is set only when the node is a member of an Object. Keys are
	// unique by convention only; lookup returns the first match.
	Key string

	Str     string  // String and Raw kinds
	Float64 float64 // Number kind
	// Int is the truncated view of Float64, fixed when the node is
	// created or parsed. It is not re-derived on mutation.
	Int int64

	// Reference marks a node whose children and string are owned by
	// another tree; Delete leaves them alone.
	Reference bool
	// ConstKey marks a key aliased from the caller rather than copied.
	ConstKey bool
}

func NewNull() *Node  { return &Node{Type: NullKind} }
func NewTrue() *Node  { return &Node{Type: TrueKind} }
func NewFalse() *Node { return &Node{Type: FalseKind} }

func NewBool(v bool) *Node {
	if v {
		return NewTrue()
	}
	return NewFalse()
}

func NewNumber(f float64) *Node {
	return &Node{
		Type:    NumberKind,
		Float64: f,
		Int:     truncInt(f),
	}
}

func NewString(s string) *Node {
	return &Node{Type: StringKind, Str: s}
}

func NewRaw(raw string) *Node {
	return &Node{Type: RawKind, Str: raw}
}

func NewArray() *Node  { return &Node{Type: ArrayKind} }
func NewObject() *Node { return &Node{Type: ObjectKind} }

// NewStringReference aliases s without claiming ownership of it.
func NewStringReference(s string) *Node {
	return &Node{Type: StringKind, Str: s, Reference: true}
}

// NewArrayReference wraps the children of another tree's array node.
func NewArrayReference(child *Node) *Node {
	if child == nil {
		return nil
	}
	return &Node{Type: ArrayKind, Child: child.Child, Reference: true}
}

// NewObjectReference wraps the members of another tree's object node.
func NewObjectReference(child *Node) *Node {
	if child == nil {
		return nil
	}
	return &Node{Type: ObjectKind, Child: child.Child, Reference: true}
}

// FromInts builds a Number array from vs.
func FromInts(vs []int) *Node {
	arr := NewArray()
	for _, v := range vs {
		arr.AddItemToArray(NewNumber(float64(v)))
	}
	return arr
}

// FromFloats builds a Number array from vs.
func FromFloats(vs []float64) *Node {
	arr := NewArray()
	for _, v := range vs {
		arr.AddItemToArray(NewNumber(v))
	}
	return arr
}

// FromStrings builds a String array from vs.
func FromStrings(vs []string) *Node {
	arr := NewArray()
	for _, v := range vs {
		arr.AddItemToArray(NewString(v))
	}
	return arr
}

func (n *Node) IsInvalid() bool { return n == nil || n.Type == InvalidKind }
func (n *Node) IsNull() bool    { return n != nil && n.Type == NullKind }
func (n *Node) IsFalse() bool   { return n != nil && n.Type == FalseKind }
func (n *Node) IsTrue() bool    { return n != nil && n.Type == TrueKind }
func (n *Node) IsBool() bool    { return n != nil && (n.Type == TrueKind || n.Type == FalseKind) }
func (n *Node) IsNumber() bool  { return n != nil && n.Type == NumberKind }
func (n *Node) IsString() bool  { return n != nil && n.Type == StringKind }
func (n *Node) IsArray() bool   { return n != nil && n.Type == ArrayKind }
func (n *Node) IsObject() bool  { return n != nil && n.Type == ObjectKind }
func (n *Node) IsRaw() bool     { return n != nil && n.Type == RawKind }

// Bool reports the truth value of a True/False node, false otherwise.
func (n *Node) Bool() bool { return n.IsTrue() }

// Delete releases an owned subtree, unlinking every owned node and
// clearing its value so the runtime can collect it. Children and
// strings of nodes flagged Reference are left alone, as are ConstKey
// keys. Delete(nil) is a no-op; calling it twice on the same tree is
// harmless but pointless.
func Delete(n *Node) {
	for n != nil {
		next := n.Next
		if !n.Reference && n.Child != nil {
			Delete(n.Child)
		}
		if !n.Reference {
			n.Str = ""
		}
		if !n.ConstKey {
			n.Key = ""
		}
		n.Child = nil
		n.Prev = nil
		n.Next = nil
		n.Type = InvalidKind
		n = next
	}
}

// Duplicate deep-copies a node. With recurse false only the node's own
// value is copied and children are left out. The copy owns everything
// it holds; Reference and ConstKey flags are not carried over.
func (n *Node) Duplicate(recurse bool) *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:    n.Type,
		Key:     n.Key,
		Str:     n.Str,
		Float64: n.Float64,
		Int:     n.Int,
	}
	if !recurse {
		return dst
	}
	var tail *Node
	for c := n.Child; c != nil; c = c.Next {
		cc := c.Duplicate(true)
		if tail == nil {
			dst.Child = cc
		} else {
			tail.Next = cc
			cc.Prev = tail
		}
		tail = cc
	}
	return dst
}

// Visit walks the subtree in document order, calling f before and
// after each node's children. Returning false from a pre-order call
// skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for c := n.Child; c != nil; c = c.Next {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

func truncInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
