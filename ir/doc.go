// Package ir provides the document tree for JSON values.
//
// # Overview
//
// A document is a tree of Node values. Arrays and objects hold their
// members as a doubly linked sibling sequence in insertion order,
// which is also serialization order. Object keys are unique by
// convention only; lookups return the first match in sibling order.
//
// # Creating Nodes
//
// Use the constructors to build trees programmatically:
//
//	obj := ir.NewObject()
//	obj.AddStringToObject("name", "alice")
//	obj.AddNumberToObject("age", 30)
//	arr := ir.FromInts([]int{1, 2, 3})
//	obj.AddItemToObject("scores", arr)
//
// # Ownership
//
// A tree is a strict tree: a node belongs to at most one parent. To
// place a value in a second tree, insert a reference
// (AddItemReferenceToArray, NewStringReference, ...); Delete skips
// reference nodes' children and strings so nothing is released twice.
//
// # Nil Safety
//
// Predicates and accessors accept a nil receiver and report "not
// present" (false, nil, zero) instead of failing; mutators treat nil
// operands as a no-op and report false.
//
// # Concurrency
//
// Trees are not safe for concurrent mutation. A tree belongs to one
// goroutine at a time; concurrent reads are safe only while no writer
// is active.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/parse - parses JSON text into trees
//   - github.com/jdom-format/go-jdom/encode - encodes trees to JSON text
//   - github.com/jdom-format/go-jdom/patch - JSON Patch over trees
package ir
