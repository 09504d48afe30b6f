package mem_test

import (
	"errors"
	"testing"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/mem"
	"github.com/jdom-format/go-jdom/parse"
)

func TestSetAndReset(t *testing.T) {
	c := &mem.Counting{}
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	buf := mem.Alloc(16)
	if buf == nil || len(buf) != 16 {
		t.Fatal("counting alloc failed")
	}
	mem.Free(buf)
	if c.Allocs != 1 || c.Frees != 1 {
		t.Errorf("counts = %d/%d, want 1/1", c.Allocs, c.Frees)
	}

	mem.Set(nil)
	mem.Free(mem.Alloc(8))
	if c.Allocs != 1 {
		t.Error("reset did not detach the counting hooks")
	}
}

func TestPartialPairFallsBack(t *testing.T) {
	freed := 0
	mem.Set(&mem.Hooks{Free: func([]byte) { freed++ }})
	defer mem.Set(nil)

	buf := mem.Alloc(4)
	if buf == nil {
		t.Fatal("nil Alloc member should fall back to the default")
	}
	mem.Free(buf)
	if freed != 1 {
		t.Error("custom Free not used")
	}
}

func TestParseBalancesHooks(t *testing.T) {
	c := &mem.Counting{}
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	node, err := parse.ParseString(`{"a":"hello","b":["x","y"]}`)
	if err != nil {
		t.Fatal(err)
	}
	if c.Allocs == 0 {
		t.Fatal("parse did not route string buffers through hooks")
	}
	if c.Outstanding() != 0 {
		t.Errorf("outstanding after successful parse = %d", c.Outstanding())
	}
	ir.Delete(node)
}

func TestFailedParseBalancesHooks(t *testing.T) {
	c := &mem.Counting{}
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	if _, err := parse.ParseString(`{"a":"hello","b":}`); err == nil {
		t.Fatal("expected parse failure")
	}
	if c.Outstanding() != 0 {
		t.Errorf("outstanding after failed parse = %d", c.Outstanding())
	}
}

func TestAllocFailureUnwinds(t *testing.T) {
	c := &mem.Counting{FailAfter: 1}
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	_, err := parse.ParseString(`["abc","def"]`)
	if !errors.Is(err, parse.ErrAlloc) {
		t.Fatalf("error = %v, want ErrAlloc", err)
	}
	if c.Outstanding() != 0 {
		t.Errorf("outstanding after alloc failure = %d", c.Outstanding())
	}
}

func TestEncodeOwnsFinalBuffer(t *testing.T) {
	node, err := parse.ParseString(`{"a":[1,2,3]}`)
	if err != nil {
		t.Fatal(err)
	}

	c := &mem.Counting{}
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	if _, err := encode.Encode(node); err != nil {
		t.Fatal(err)
	}
	// Growth rounds free their predecessors; only the returned buffer
	// stays out.
	if c.Outstanding() != 1 {
		t.Errorf("outstanding after encode = %d, want 1", c.Outstanding())
	}
}

func TestEncodeAllocFailure(t *testing.T) {
	node, err := parse.ParseString(`[1]`)
	if err != nil {
		t.Fatal(err)
	}

	c := &mem.Counting{}
	c.Deny()
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	if _, err := encode.Encode(node); !errors.Is(err, encode.ErrAlloc) {
		t.Errorf("error = %v, want ErrAlloc", err)
	}
}

func TestEncodeGrowthFailure(t *testing.T) {
	node, err := parse.ParseString(`["0123456789012345678901234567890123456789"]`)
	if err != nil {
		t.Fatal(err)
	}

	// One allocation succeeds (the initial buffer), growth fails.
	c := &mem.Counting{FailAfter: 1}
	mem.Set(c.Hooks())
	defer mem.Set(nil)

	_, err = encode.Encode(node, encode.WithInitialCapacity(4))
	if !errors.Is(err, encode.ErrBufferGrow) {
		t.Errorf("error = %v, want ErrBufferGrow", err)
	}
	if c.Outstanding() != 0 {
		t.Errorf("outstanding after failed encode = %d", c.Outstanding())
	}
}
