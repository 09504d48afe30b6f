package patch_test

import (
	"testing"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
	"github.com/jdom-format/go-jdom/patch"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"name":"alice","age":30}`)
	ops := []byte(`[
		{"op": "replace", "path": "/age", "value": 31},
		{"op": "add", "path": "/admin", "value": true}
	]`)

	got, err := patch.Apply(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	if age := got.ObjectItemCS("age"); age == nil || age.Float64 != 31 {
		t.Errorf("age not replaced: %s", encode.MustString(got))
	}
	if !got.ObjectItemCS("admin").IsTrue() {
		t.Errorf("admin not added: %s", encode.MustString(got))
	}
	// The input tree is never mutated.
	if doc.ObjectItemCS("age").Float64 != 30 {
		t.Error("Apply mutated its input")
	}
}

func TestApplyBadPatch(t *testing.T) {
	doc := mustParse(t, `{}`)
	if _, err := patch.Apply(doc, []byte(`[{"op":"remove","path":"/missing"}]`)); err == nil {
		t.Error("removing a missing path should fail")
	}
	if _, err := patch.Apply(doc, []byte(`not a patch`)); err == nil {
		t.Error("undecodable patch should fail")
	}
}

func TestApplyMerge(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	got, err := patch.ApplyMerge(doc, []byte(`{"b":null,"c":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.HasObjectItem("b") {
		t.Error("merge patch null did not remove member")
	}
	if c := got.ObjectItemCS("c"); c == nil || c.Float64 != 3 {
		t.Error("merge patch did not add member")
	}
}

func TestCreateMergeRoundTrip(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":{"x":true}}`)
	to := mustParse(t, `{"a":2,"b":{"x":true},"c":"new"}`)

	mp, err := patch.CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	got, err := patch.ApplyMerge(from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, to, true) {
		t.Errorf("merge round trip: got %s, want %s",
			encode.MustString(got), encode.MustString(to))
	}
}
