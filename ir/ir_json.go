package ir

import "encoding/json"

// The IR itself is representable as JSON, which makes trees easy to
// inspect, log, and move between processes that lack this library.
// This is the node meta-structure, not the document the tree encodes;
// use the encode package for the latter.

type irBase struct {
	Kind     Kind     `json:"kind"`
	Key      string   `json:"key,omitempty"`
	Children []*Node  `json:"children,omitempty"`
	Str      string   `json:"string,omitempty"`
	Float64  *float64 `json:"float,omitempty"`
	Int      *int64   `json:"int,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Kind: n.Type,
		Key:  n.Key,
		Str:  n.Str,
	}
	if n.Type == NumberKind {
		f, i := n.Float64, n.Int
		base.Float64 = &f
		base.Int = &i
	}
	for c := n.Child; c != nil; c = c.Next {
		base.Children = append(base.Children, c)
	}
	return json.Marshal(base)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	base := &irBase{}
	if err := json.Unmarshal(d, base); err != nil {
		return err
	}
	n.Type = base.Kind
	n.Key = base.Key
	n.Str = base.Str
	if base.Float64 != nil {
		n.Float64 = *base.Float64
	}
	if base.Int != nil {
		n.Int = *base.Int
	} else if base.Float64 != nil {
		n.Int = truncInt(*base.Float64)
	}
	n.Child = nil
	var prev *Node
	for _, c := range base.Children {
		if prev == nil {
			n.Child = c
		} else {
			prev.Next = c
			c.Prev = prev
		}
		prev = c
	}
	return nil
}
