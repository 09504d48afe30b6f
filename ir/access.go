package ir

import "strings"

// ArraySize counts the children of an array or object node by walking
// the sibling sequence. Nil and leaf nodes have size 0.
func (n *Node) ArraySize() int {
	if n == nil {
		return 0
	}
	size := 0
	for c := n.Child; c != nil; c = c.Next {
		size++
	}
	return size
}

// ArrayItem returns the index-th child, or nil when index is negative
// or past the end.
func (n *Node) ArrayItem(index int) *Node {
	if n == nil || index < 0 {
		return nil
	}
	c := n.Child
	for c != nil && index > 0 {
		c = c.Next
		index--
	}
	return c
}

// ObjectItem returns the first member whose key matches, ignoring
// case. Absent keys yield nil, never a default value.
func (n *Node) ObjectItem(key string) *Node {
	if n == nil {
		return nil
	}
	for c := n.Child; c != nil; c = c.Next {
		if strings.EqualFold(c.Key, key) {
			return c
		}
	}
	return nil
}

// ObjectItemCS is the case-sensitive variant of ObjectItem.
func (n *Node) ObjectItemCS(key string) *Node {
	if n == nil {
		return nil
	}
	for c := n.Child; c != nil; c = c.Next {
		if c.Key == key {
			return c
		}
	}
	return nil
}

func (n *Node) HasObjectItem(key string) bool {
	return n.ObjectItem(key) != nil
}

// AddItemToArray appends item to the tail of n's sibling sequence.
// It reports false when either node is nil.
func (n *Node) AddItemToArray(item *Node) bool {
	if n == nil || item == nil {
		return false
	}
	c := n.Child
	if c == nil {
		n.Child = item
		return true
	}
	for c.Next != nil {
		c = c.Next
	}
	c.Next = item
	item.Prev = c
	return true
}

// AddItemToObject appends item as a member with its own copy of key.
func (n *Node) AddItemToObject(key string, item *Node) bool {
	return n.addToObject(key, item, false)
}

// AddItemToObjectCS appends item with key aliased rather than copied;
// the member's ConstKey flag records that the key is not owned.
func (n *Node) AddItemToObjectCS(key string, item *Node) bool {
	return n.addToObject(key, item, true)
}

func (n *Node) addToObject(key string, item *Node, constKey bool) bool {
	if n == nil || item == nil {
		return false
	}
	item.Key = key
	item.ConstKey = constKey
	return n.AddItemToArray(item)
}

// AddItemReferenceToArray appends a non-owning alias of item.
func (n *Node) AddItemReferenceToArray(item *Node) bool {
	return n.AddItemToArray(reference(item))
}

// AddItemReferenceToObject appends a non-owning alias of item under key.
func (n *Node) AddItemReferenceToObject(key string, item *Node) bool {
	return n.addToObject(key, reference(item), false)
}

func reference(item *Node) *Node {
	if item == nil {
		return nil
	}
	ref := *item
	ref.Reference = true
	ref.Key = ""
	ref.ConstKey = false
	ref.Prev = nil
	ref.Next = nil
	return &ref
}

// The AddXToObject helpers create a node, attach it, and hand it back.
// When the attach fails the fresh node is deleted rather than leaked.

func (n *Node) AddNullToObject(key string) *Node {
	return n.addNewToObject(key, NewNull())
}

func (n *Node) AddTrueToObject(key string) *Node {
	return n.addNewToObject(key, NewTrue())
}

func (n *Node) AddFalseToObject(key string) *Node {
	return n.addNewToObject(key, NewFalse())
}

func (n *Node) AddBoolToObject(key string, v bool) *Node {
	return n.addNewToObject(key, NewBool(v))
}

func (n *Node) AddNumberToObject(key string, v float64) *Node {
	return n.addNewToObject(key, NewNumber(v))
}

func (n *Node) AddStringToObject(key, v string) *Node {
	return n.addNewToObject(key, NewString(v))
}

func (n *Node) AddRawToObject(key, raw string) *Node {
	return n.addNewToObject(key, NewRaw(raw))
}

func (n *Node) AddArrayToObject(key string) *Node {
	return n.addNewToObject(key, NewArray())
}

func (n *Node) AddObjectToObject(key string) *Node {
	return n.addNewToObject(key, NewObject())
}

func (n *Node) addNewToObject(key string, item *Node) *Node {
	if n.AddItemToObject(key, item) {
		return item
	}
	Delete(item)
	return nil
}

// DetachItem unlinks item from parent's sibling sequence in O(1) and
// returns it as a root node. It returns nil when item is not a child
// of parent.
func (parent *Node) DetachItem(item *Node) *Node {
	if parent == nil || item == nil {
		return nil
	}
	if item.Prev == nil && parent.Child != item {
		return nil
	}
	if item.Prev != nil {
		item.Prev.Next = item.Next
	}
	if item.Next != nil {
		item.Next.Prev = item.Prev
	}
	if parent.Child == item {
		parent.Child = item.Next
	}
	item.Prev = nil
	item.Next = nil
	return item
}

// DetachItemFromArray unlinks and returns the index-th child.
func (n *Node) DetachItemFromArray(index int) *Node {
	return n.DetachItem(n.ArrayItem(index))
}

// DeleteItemFromArray removes and releases the index-th child.
func (n *Node) DeleteItemFromArray(index int) {
	Delete(n.DetachItemFromArray(index))
}

// DetachItemFromObject unlinks and returns the first member matching
// key, ignoring case.
func (n *Node) DetachItemFromObject(key string) *Node {
	return n.DetachItem(n.ObjectItem(key))
}

// DetachItemFromObjectCS is the case-sensitive variant.
func (n *Node) DetachItemFromObjectCS(key string) *Node {
	return n.DetachItem(n.ObjectItemCS(key))
}

// DeleteItemFromObject removes and releases the first member matching
// key, ignoring case.
func (n *Node) DeleteItemFromObject(key string) {
	Delete(n.DetachItemFromObject(key))
}

// ReplaceItem swaps item for a new node in place, keeping the member
// key when the parent is an object.
func (parent *Node) ReplaceItem(item, with *Node) bool {
	if parent == nil || item == nil || with == nil {
		return false
	}
	if item.Prev == nil && parent.Child != item {
		return false
	}
	with.Next = item.Next
	with.Prev = item.Prev
	if with.Next != nil {
		with.Next.Prev = with
	}
	if with.Prev != nil {
		with.Prev.Next = with
	}
	if parent.Child == item {
		parent.Child = with
	}
	if parent.Type == ObjectKind {
		with.Key = item.Key
		with.ConstKey = item.ConstKey
		item.ConstKey = false
	}
	item.Next = nil
	item.Prev = nil
	Delete(item)
	return true
}
