// Package patch applies RFC 6902 JSON Patches and RFC 7386 merge
// patches to ir trees. Patches operate on the serialized form: the
// tree is encoded, patched, and reparsed, so a patched tree is always
// a fresh tree and the input is never mutated.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jdom-format/go-jdom/debug"
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
)

// Apply applies an RFC 6902 patch document to doc.
func Apply(doc *ir.Node, patchText []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchText)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := encode.Encode(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", d, patchText)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return parse.Parse(out)
}

// ApplyMerge applies an RFC 7386 merge patch document to doc.
func ApplyMerge(doc *ir.Node, mergeText []byte) (*ir.Node, error) {
	d, err := encode.Encode(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mergeText)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return parse.Parse(out)
}

// CreateMerge computes the RFC 7386 merge patch text that turns from
// into to.
func CreateMerge(from, to *ir.Node) ([]byte, error) {
	df, err := encode.Encode(from)
	if err != nil {
		return nil, err
	}
	dt, err := encode.Encode(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(df, dt)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return out, nil
}
