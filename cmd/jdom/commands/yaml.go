package commands

import (
	"github.com/goccy/go-yaml"

	"github.com/jdom-format/go-jdom/ir"
)

// toYAML re-renders a tree as YAML. Object member order is preserved
// through yaml.MapSlice.
func toYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(toAny(node))
}

func toAny(n *ir.Node) any {
	switch {
	case n.IsTrue():
		return true
	case n.IsFalse():
		return false
	case n.IsNumber():
		if n.Float64 == float64(n.Int) {
			return n.Int
		}
		return n.Float64
	case n.IsString(), n.IsRaw():
		return n.Str
	case n.IsArray():
		vs := []any{}
		for c := n.Child; c != nil; c = c.Next {
			vs = append(vs, toAny(c))
		}
		return vs
	case n.IsObject():
		ms := yaml.MapSlice{}
		for c := n.Child; c != nil; c = c.Next {
			ms = append(ms, yaml.MapItem{Key: c.Key, Value: toAny(c)})
		}
		return ms
	}
	return nil
}
