package ir

import "fmt"

// Kind tags a Node with the JSON value it carries.
type Kind int

const (
	InvalidKind Kind = iota
	NullKind
	FalseKind
	TrueKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
	// RawKind marks caller-supplied JSON text carried in Str. The
	// encoder currently quotes it like a String.
	RawKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		InvalidKind: "Invalid",
		NullKind:    "Null",
		FalseKind:   "False",
		TrueKind:    "True",
		NumberKind:  "Number",
		StringKind:  "String",
		ArrayKind:   "Array",
		ObjectKind:  "Object",
		RawKind:     "Raw",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Invalid": InvalidKind,
		"Null":    NullKind,
		"False":   FalseKind,
		"True":    TrueKind,
		"Number":  NumberKind,
		"String":  StringKind,
		"Array":   ArrayKind,
		"Object":  ObjectKind,
		"Raw":     RawKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		FalseKind,
		TrueKind,
		NumberKind,
		StringKind,
		ArrayKind,
		ObjectKind,
		RawKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}
