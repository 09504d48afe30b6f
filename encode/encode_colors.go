package encode

import (
	"strings"

	"github.com/jdom-format/go-jdom/ir"

	"github.com/fatih/color"
)

// Terminal colorization for CLI display. The colored rendering is a
// separate walk; the plain encoder stays byte-exact regardless of any
// Colors in play.

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	}

	able := Colorable{Attr: ValueColor}
	able.Kind = ir.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ir.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = ir.TrueKind
	colors.Map[able] = color.CyanString
	able.Kind = ir.FalseKind
	colors.Map[able] = color.CyanString
	able.Kind = ir.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = ir.RawKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(s string, _ ...any) string { return s }

func (cs *Colors) color(kind ir.Kind, attr ColorAttr, s string) string {
	if f, ok := cs.Map[Colorable{Kind: kind, Attr: attr}]; ok {
		return f(s)
	}
	return cs.Default(s)
}

// Sprint renders node as compact JSON with ANSI color around fields,
// values, and separators.
func (cs *Colors) Sprint(node *ir.Node) (string, error) {
	var sb strings.Builder
	if err := cs.sprint(node, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cs *Colors) sprint(n *ir.Node, sb *strings.Builder) error {
	switch {
	case n.IsArray():
		sb.WriteString(cs.color(n.Type, SepColor, "["))
		for c := n.Child; c != nil; c = c.Next {
			if err := cs.sprint(c, sb); err != nil {
				return err
			}
			if c.Next != nil {
				sb.WriteString(cs.color(n.Type, SepColor, ","))
			}
		}
		sb.WriteString(cs.color(n.Type, SepColor, "]"))
	case n.IsObject():
		sb.WriteString(cs.color(n.Type, SepColor, "{"))
		for c := n.Child; c != nil; c = c.Next {
			key, err := EncodeString(ir.NewString(c.Key))
			if err != nil {
				return err
			}
			sb.WriteString(cs.color(n.Type, FieldColor, key))
			sb.WriteString(cs.color(n.Type, SepColor, ":"))
			if err := cs.sprint(c, sb); err != nil {
				return err
			}
			if c.Next != nil {
				sb.WriteString(cs.color(n.Type, SepColor, ","))
			}
		}
		sb.WriteString(cs.color(n.Type, SepColor, "}"))
	default:
		text, err := EncodeString(n)
		if err != nil {
			return err
		}
		sb.WriteString(cs.color(n.Type, ValueColor, text))
	}
	return nil
}
