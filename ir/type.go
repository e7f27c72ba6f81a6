package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	ScalarType
	MappingType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		ScalarType:  "Scalar",
		MappingType: "Mapping",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Scalar":  ScalarType,
		"Mapping": MappingType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{NullType, ScalarType, MappingType}
}

func (t Type) IsLeaf() bool {
	return t != MappingType
}
