package encode

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/mem"
)

var (
	// ErrAlloc means the initial output buffer could not be obtained.
	ErrAlloc = errors.New("allocation failed")
	// ErrBufferGrow means the output buffer could not be grown.
	ErrBufferGrow = errors.New("output buffer growth failed")
	// ErrEncode means the tree holds a node no JSON text can carry.
	ErrEncode = errors.New("unencodable node")
)

// Encode produces the compact JSON text for a tree. No whitespace is
// inserted; children print in sibling order. The output buffer comes
// from the mem registry and belongs to the caller.
func Encode(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := &encOpts{initialCapacity: DefaultInitialCapacity}
	for _, opt := range opts {
		opt(es)
	}
	p := &printer{buf: mem.Alloc(es.initialCapacity)}
	if p.buf == nil {
		return nil, fmt.Errorf("output buffer: %w", ErrAlloc)
	}
	if err := encodeValue(node, p); err != nil {
		mem.Free(p.buf)
		return nil, err
	}
	if p.failed {
		mem.Free(p.buf)
		return nil, ErrBufferGrow
	}
	return p.buf[:p.off], nil
}

// EncodeString is Encode returning a string.
func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	d, err := Encode(node, opts...)
	if err != nil {
		return "", err
	}
	s := string(d)
	mem.Free(d)
	return s, nil
}

// EncodeFormatted aliases the compact encoder; there is no
// pretty-printing mode.
func EncodeFormatted(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	return Encode(node, opts...)
}

// printer is a growable output buffer. Growth doubles the needed size
// and preserves already-written bytes; a failed growth latches and
// turns every later write into a no-op.
type printer struct {
	buf    []byte
	off    int
	failed bool
}

func (p *printer) ensure(n int) bool {
	if p.failed {
		return false
	}
	needed := p.off + n + 1
	if needed <= len(p.buf) {
		return true
	}
	nb := mem.Alloc(needed * 2)
	if nb == nil {
		p.failed = true
		return false
	}
	copy(nb, p.buf[:p.off])
	mem.Free(p.buf)
	p.buf = nb
	return true
}

func (p *printer) writeByte(b byte) {
	if !p.ensure(1) {
		return
	}
	p.buf[p.off] = b
	p.off++
}

func (p *printer) writeString(s string) {
	if !p.ensure(len(s)) {
		return
	}
	copy(p.buf[p.off:], s)
	p.off += len(s)
}

func encodeValue(n *ir.Node, p *printer) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrEncode)
	}
	switch n.Type {
	case ir.NullKind:
		p.writeString("null")
	case ir.FalseKind:
		p.writeString("false")
	case ir.TrueKind:
		p.writeString("true")
	case ir.NumberKind:
		p.writeString(numberText(n))
	case ir.StringKind, ir.RawKind:
		encodeString(n.Str, p)
	case ir.ArrayKind:
		p.writeByte('[')
		for c := n.Child; c != nil; c = c.Next {
			if err := encodeValue(c, p); err != nil {
				return err
			}
			if c.Next != nil {
				p.writeByte(',')
			}
		}
		p.writeByte(']')
	case ir.ObjectKind:
		p.writeByte('{')
		for c := n.Child; c != nil; c = c.Next {
			encodeString(c.Key, p)
			p.writeByte(':')
			if err := encodeValue(c, p); err != nil {
				return err
			}
			if c.Next != nil {
				p.writeByte(',')
			}
		}
		p.writeByte('}')
	default:
		return fmt.Errorf("%w: kind %s", ErrEncode, n.Type)
	}
	return nil
}

// numberText prints integers without a fraction when the stored double
// equals its truncated view exactly; non-finite values have no JSON
// representation and print as null.
func numberText(n *ir.Node) string {
	f := n.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == float64(n.Int) {
		return strconv.FormatInt(n.Int, 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

const hexDigits = "0123456789abcdef"

// encodeString writes s as a quoted JSON string. The quote, the
// backslash, and the C0 controls with short escapes use those; any
// other byte below 0x20 becomes \u00XX. Bytes >= 0x20 pass through
// verbatim with no output-side UTF-8 validation.
func encodeString(s string, p *printer) {
	p.writeByte('"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '"':
			p.writeString(`\"`)
		case b == '\\':
			p.writeString(`\\`)
		case b == '\b':
			p.writeString(`\b`)
		case b == '\f':
			p.writeString(`\f`)
		case b == '\n':
			p.writeString(`\n`)
		case b == '\r':
			p.writeString(`\r`)
		case b == '\t':
			p.writeString(`\t`)
		case b < 0x20:
			p.writeString(`\u00`)
			p.writeByte(hexDigits[b>>4])
			p.writeByte(hexDigits[b&0xf])
		default:
			p.writeByte(b)
		}
	}
	p.writeByte('"')
}
