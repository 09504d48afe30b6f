package libdiff_test

import (
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jdom-format/go-jdom/libdiff"
	"github.com/jdom-format/go-jdom/parse"
)

func TestEqual(t *testing.T) {
	a, err := parse.ParseString(`{"a":[1,2],"b":"x"}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString(` { "a" : [ 1 , 2 ] , "b" : "x" } `)
	if err != nil {
		t.Fatal(err)
	}
	if !libdiff.Equal(a, b) {
		t.Error("whitespace-only variants should be equal")
	}
}

func TestDiffs(t *testing.T) {
	a, err := parse.ParseString(`{"a":1,"b":"same"}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString(`{"a":2,"b":"same"}`)
	if err != nil {
		t.Fatal(err)
	}

	diffs, err := libdiff.Diffs(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var ins, del bool
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			ins = true
		case diffpatch.DiffDelete:
			del = true
		}
	}
	if !ins || !del {
		t.Errorf("diff misses the change: %v", diffs)
	}

	text, err := libdiff.Text(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if text == "" {
		t.Error("empty rendering for differing documents")
	}
}
