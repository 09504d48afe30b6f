// Package parse parses JSON text into ir trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.WithNestingLimit(64))
//
// # Deviations from strict JSON
//
// Two deviations are part of the wire contract: a \uXXXX escape
// decodes to the single Placeholder byte rather than its code point,
// and text following the top-level value is not rejected. Both are
// deliberate; see the package tests that pin them down.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/ir - document tree
//   - github.com/jdom-format/go-jdom/encode - encode trees to text
package parse
