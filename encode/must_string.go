package encode

import (
	"bytes"

	"github.com/locyaml/locyaml/ir"
)

// String encodes node to canonical text.
func String(node *ir.Node, options ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, options...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, options ...Option) string {
	s, err := String(node, options...)
	if err != nil {
		panic(err)
	}
	return s
}
