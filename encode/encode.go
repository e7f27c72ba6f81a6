// Package encode writes a mapping tree back out as canonical text. It
// is the inverse of parse: multi-line scalars become literal block
// scalars, everything else is emitted inline through the quoting
// engine.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/locyaml/locyaml/ir"
	"github.com/locyaml/locyaml/token"
)

type encState struct {
	unit     int
	depth    int
	comments bool
	color    *Colors
}

func Encode(node *ir.Node, w io.Writer, options ...Option) error {
	es := &encState{
		unit:     token.DefaultIndentUnit,
		comments: true,
	}
	for _, opt := range options {
		opt(es)
	}
	if node == nil || node.Type != ir.MappingType {
		return fmt.Errorf("%w: cannot encode %v", ir.ErrNotMapping, node)
	}
	if err := encodeMapping(node, w, es); err != nil {
		return err
	}
	if es.comments {
		// trailing comments of the document hang off the root
		for _, c := range node.Comment {
			if err := writeString(w, es.paint(CommentColor, c)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeMapping(m *ir.Node, w io.Writer, es *encState) error {
	pad := strings.Repeat(" ", es.unit*es.depth)
	for i, key := range m.Fields {
		v := m.Values[i]
		if es.comments {
			for _, c := range v.Comment {
				if err := writeString(w, pad+es.paint(CommentColor, c)+"\n"); err != nil {
					return err
				}
			}
		}
		k := es.paint(KeyColor, token.QuoteKey(key))
		switch v.Type {
		case ir.NullType:
			if err := writeString(w, pad+k+": "+es.paint(NullColor, "null")+"\n"); err != nil {
				return err
			}
		case ir.MappingType:
			if err := writeString(w, pad+k+":\n"); err != nil {
				return err
			}
			es.depth++
			err := encodeMapping(v, w, es)
			es.depth--
			if err != nil {
				return err
			}
		case ir.ScalarType:
			if err := encodeScalar(k, v.Scalar, pad, w, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("cannot encode node type %s", v.Type)
		}
	}
	return nil
}

func encodeScalar(k, s, pad string, w io.Writer, es *encState) error {
	if !strings.ContainsRune(s, '\n') && !strings.Contains(s, `\n`) {
		return writeString(w, pad+k+": "+es.paint(ValueColor, token.QuoteValue(s))+"\n")
	}
	s = strings.ReplaceAll(s, `\n`, "\n")
	trail := len(s) - len(strings.TrimRight(s, "\n"))
	comps := strings.Split(s, "\n")
	if trail > 0 {
		// the final newline implies one empty component
		comps = comps[:len(comps)-1]
	}
	hdr := &token.BlockHeader{}
	switch {
	case trail == 0:
		hdr.Chomp = token.ChompStrip
	case trail >= 2:
		hdr.Chomp = token.ChompKeep
	}
	if len(comps) > 0 && strings.HasPrefix(comps[0], " ") {
		hdr.Indent = es.unit
	}
	if err := writeString(w, pad+k+": "+es.paint(BlockColor, hdr.Token())+"\n"); err != nil {
		return err
	}
	body := strings.Repeat(" ", es.unit*(es.depth+1))
	for _, c := range comps {
		if c == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, body+es.paint(ValueColor, c)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *encState) paint(attr ColorAttr, s string) string {
	if es.color == nil {
		return s
	}
	return es.color.Color(attr, s)
}
