// Package libdiff renders differences between two documents for
// display. The diff is line-oriented over the serialized forms;
// structural equality checks ride on ir.Compare.
package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jdom-format/go-jdom/debug"
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
)

// Equal reports whether two trees serialize identically.
func Equal(from, to *ir.Node) bool {
	return ir.Compare(from, to) == 0
}

// Diffs computes the character-level diff between the compact texts
// of from and to.
func Diffs(from, to *ir.Node) ([]diffpatch.Diff, error) {
	df, err := encode.EncodeString(from)
	if err != nil {
		return nil, err
	}
	dt, err := encode.EncodeString(to)
	if err != nil {
		return nil, err
	}
	if debug.Diff() {
		debug.Logf("diff %s -> %s\n", debug.Doc{Node: from}, debug.Doc{Node: to})
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(df, dt, false)
	return diffCfg.DiffCleanupSemantic(diffs), nil
}

// Text renders the diff with ANSI color: deletions red, insertions
// green, shared text plain.
func Text(from, to *ir.Node) (string, error) {
	diffs, err := Diffs(from, to)
	if err != nil {
		return "", err
	}
	return diffpatch.New().DiffPrettyText(diffs), nil
}
