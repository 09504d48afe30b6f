package parse

import (
	"strconv"

	"github.com/jdom-format/go-jdom/debug"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/mem"
)

// Placeholder is the byte written in place of a \uXXXX escape. The
// four hex digits are skipped, not decoded; this is a documented lossy
// deviation from strict JSON, kept for compatibility with existing
// documents produced by this library's predecessors.
const Placeholder = '?'

// Parse reads a single JSON value from d and returns its tree.
// Text after the value is not rejected; only the value itself is
// validated. On failure no partial tree survives: everything built so
// far is released and the error carries the offending offset.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{nestingLimit: DefaultNestingLimit}
	for _, f := range opts {
		f(pOpts)
	}
	if len(d) == 0 {
		return nil, &SyntaxError{Offset: 0, Msg: "empty input"}
	}
	c := &cursor{buf: d, limit: pOpts.nestingLimit}
	node, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes: %s\n", c.off, debug.Doc{Node: node})
	}
	return node, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type cursor struct {
	buf   []byte
	off   int
	depth int
	limit int
}

func (c *cursor) errf(msg string) error {
	return &SyntaxError{Offset: c.off, Msg: msg}
}

// Bytes with value <= 0x20 count as whitespace before every value.
func (c *cursor) skipWS() {
	for c.off < len(c.buf) && c.buf[c.off] <= ' ' {
		c.off++
	}
}

// literal consumes lit at the cursor if present.
func (c *cursor) literal(lit string) bool {
	if c.off+len(lit) > len(c.buf) {
		return false
	}
	if string(c.buf[c.off:c.off+len(lit)]) != lit {
		return false
	}
	c.off += len(lit)
	return true
}

func (c *cursor) parseValue() (*ir.Node, error) {
	c.skipWS()
	if c.off >= len(c.buf) {
		return nil, c.errf("unexpected end of input")
	}
	switch b := c.buf[c.off]; {
	case b == 'n' && c.literal("null"):
		return ir.NewNull(), nil
	case b == 't' && c.literal("true"):
		return ir.NewTrue(), nil
	case b == 'f' && c.literal("false"):
		return ir.NewFalse(), nil
	case b == '"':
		s, err := c.parseString()
		if err != nil {
			return nil, err
		}
		return ir.NewString(s), nil
	case b == '-' || (b >= '0' && b <= '9'):
		return c.parseNumber()
	case b == '[':
		return c.parseArray()
	case b == '{':
		return c.parseObject()
	}
	return nil, c.errf("invalid value")
}

// parseString scans for the closing quote first, then decodes escapes
// into a scratch buffer obtained from the mem registry. Escapes \" \\
// \/ \b \f \n \r \t decode to their bytes; \u decodes to Placeholder
// with the four hex digits skipped. Unknown escapes pass the escaped
// byte through.
func (c *cursor) parseString() (string, error) {
	if c.buf[c.off] != '"' {
		return "", c.errf("not a string")
	}
	start := c.off + 1

	// First pass: locate the closing quote, counting decoded bytes.
	i := start
	count := 0
	for {
		if i >= len(c.buf) {
			return "", c.errf("unterminated string")
		}
		b := c.buf[i]
		if b == '"' {
			break
		}
		if b == '\\' {
			i++
			if i >= len(c.buf) {
				return "", c.errf("unterminated string")
			}
		}
		i++
		count++
	}
	end := i
	c.off = end + 1

	if count == 0 {
		return "", nil
	}
	out := mem.Alloc(count)
	if out == nil {
		return "", errAlloc("string buffer")
	}

	// Second pass: copy and decode.
	w := 0
	for i = start; i < end; i++ {
		b := c.buf[i]
		if b != '\\' {
			out[w] = b
			w++
			continue
		}
		i++
		if i >= end {
			break
		}
		switch c.buf[i] {
		case 'b':
			out[w] = '\b'
		case 'f':
			out[w] = '\f'
		case 'n':
			out[w] = '\n'
		case 'r':
			out[w] = '\r'
		case 't':
			out[w] = '\t'
		case 'u':
			out[w] = Placeholder
			if i += 4; i >= end {
				i = end
			}
		default:
			out[w] = c.buf[i]
		}
		w++
	}

	s := string(out[:w])
	mem.Free(out)
	return s, nil
}

// parseNumber consumes the longest prefix matching a sign, digits, an
// optional fraction, and an optional signed exponent, then hands the
// text to strconv. The accepted grammar is strconv's, not strict
// JSON's: leading zeros and "1." pass, which is acceptable per the
// wire contract.
func (c *cursor) parseNumber() (*ir.Node, error) {
	start := c.off
	i := c.off
	if i < len(c.buf) && c.buf[i] == '-' {
		i++
	}
	for i < len(c.buf) && c.buf[i] >= '0' && c.buf[i] <= '9' {
		i++
	}
	if i < len(c.buf) && c.buf[i] == '.' {
		i++
		for i < len(c.buf) && c.buf[i] >= '0' && c.buf[i] <= '9' {
			i++
		}
	}
	if i < len(c.buf) && (c.buf[i] == 'e' || c.buf[i] == 'E') {
		j := i + 1
		if j < len(c.buf) && (c.buf[j] == '+' || c.buf[j] == '-') {
			j++
		}
		if j < len(c.buf) && c.buf[j] >= '0' && c.buf[j] <= '9' {
			for j < len(c.buf) && c.buf[j] >= '0' && c.buf[j] <= '9' {
				j++
			}
			i = j
		}
	}
	if i == start {
		return nil, c.errf("invalid number")
	}
	f, err := strconv.ParseFloat(string(c.buf[start:i]), 64)
	if err != nil {
		return nil, c.errf("invalid number")
	}
	c.off = i
	return ir.NewNumber(f), nil
}

func (c *cursor) parseArray() (*ir.Node, error) {
	if c.depth >= c.limit {
		return nil, c.errf("nesting too deep")
	}
	c.depth++
	defer func() { c.depth-- }()

	c.off++ // '['
	arr := ir.NewArray()
	c.skipWS()
	if c.off < len(c.buf) && c.buf[c.off] == ']' {
		c.off++
		return arr, nil
	}
	for {
		item, err := c.parseValue()
		if err != nil {
			ir.Delete(arr)
			return nil, err
		}
		arr.AddItemToArray(item)
		c.skipWS()
		if c.off < len(c.buf) && c.buf[c.off] == ',' {
			c.off++
			continue
		}
		break
	}
	if c.off >= len(c.buf) || c.buf[c.off] != ']' {
		ir.Delete(arr)
		return nil, c.errf("expected ']'")
	}
	c.off++
	return arr, nil
}

func (c *cursor) parseObject() (*ir.Node, error) {
	if c.depth >= c.limit {
		return nil, c.errf("nesting too deep")
	}
	c.depth++
	defer func() { c.depth-- }()

	c.off++ // '{'
	obj := ir.NewObject()
	c.skipWS()
	if c.off < len(c.buf) && c.buf[c.off] == '}' {
		c.off++
		return obj, nil
	}
	for {
		c.skipWS()
		if c.off >= len(c.buf) {
			ir.Delete(obj)
			return nil, c.errf("unexpected end of input")
		}
		key, err := c.parseString()
		if err != nil {
			ir.Delete(obj)
			return nil, err
		}
		c.skipWS()
		if c.off >= len(c.buf) || c.buf[c.off] != ':' {
			ir.Delete(obj)
			return nil, c.errf("expected ':'")
		}
		c.off++
		item, err := c.parseValue()
		if err != nil {
			ir.Delete(obj)
			return nil, err
		}
		obj.AddItemToObject(key, item)
		c.skipWS()
		if c.off < len(c.buf) && c.buf[c.off] == ',' {
			c.off++
			continue
		}
		break
	}
	if c.off >= len(c.buf) || c.buf[c.off] != '}' {
		ir.Delete(obj)
		return nil, c.errf("expected '}'")
	}
	c.off++
	return obj, nil
}
