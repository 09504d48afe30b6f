package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the subtree, stable within a process.
// Keys participate; Reference and ConstKey flags do not.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))
	h.WriteString(n.Key)

	switch n.Type {
	case NumberKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Float64))
		h.Write(b[:])
	case StringKind, RawKind:
		h.WriteString(n.Str)
	case ArrayKind, ObjectKind:
		var b [8]byte
		for c := n.Child; c != nil; c = c.Next {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
