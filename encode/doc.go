// Package encode encodes ir trees to compact JSON text.
//
// # Usage
//
//	obj := ir.NewObject()
//	obj.AddStringToObject("name", "alice")
//	obj.AddNumberToObject("age", 30)
//	out, err := encode.Encode(obj)
//
//	// Encode with a pre-sized buffer
//	out, err := encode.Encode(obj, encode.WithInitialCapacity(4096))
//
// Output is always compact: no inserted whitespace, children in
// sibling order, object members as "key":value. EncodeFormatted is an
// alias of the compact form.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/ir - document tree
//   - github.com/jdom-format/go-jdom/parse - parse text to trees
package encode
