package encode

import "github.com/jdom-format/go-jdom/ir"

// MustString returns the compact text for node, panicking on error.
// For logs, debug output, and tests.
func MustString(node *ir.Node) string {
	s, err := EncodeString(node)
	if err != nil {
		panic(err)
	}
	return s
}
