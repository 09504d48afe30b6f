package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
)

// Doc wraps a node so it formats as compact JSON under %s/%v.
type Doc struct{ *ir.Node }

func (y Doc) String() string {
	x := y.Node
	s, err := encode.EncodeString(x)
	if err != nil {
		return fmt.Sprintf("[raw node] %v", x)
	}
	return s
}

// Logf writes to stderr, rendering *ir.Node arguments as compact JSON
// and maps/slices through encoding/json before formatting.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := encode.EncodeString(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
