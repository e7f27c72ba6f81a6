// Package parse builds the ordered mapping tree from a normalized
// translation file.
package parse

import (
	"fmt"
	"strings"

	"github.com/locyaml/locyaml/debug"
	"github.com/locyaml/locyaml/ir"
	"github.com/locyaml/locyaml/token"
)

// blockAcc buffers the body of an open block scalar until enough
// dedentation, or the end of input, closes it.
type blockAcc struct {
	node      *ir.Node
	header    *token.BlockHeader
	threshold int
	sup       int
	lines     []string
}

// Parse converts normalized text into a mapping node. Input is expected
// to have gone through the normalizer; lines it cannot place yield
// ErrMalformedInput.
func Parse(d []byte, options ...Option) (*ir.Node, error) {
	o := getOpts(options)
	root := ir.NewMapping()
	var (
		path    []string
		acc     *blockAcc
		pending []string
	)
	lines := strings.Split(string(d), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		// the final newline is a terminator, not an empty line
		lines = lines[:n-1]
	}
	for li, line := range lines {
		if acc != nil {
			if token.IsBlank(line) {
				acc.lines = append(acc.lines, "")
				continue
			}
			if token.Indent(line) > acc.threshold {
				acc.lines = append(acc.lines, stripIndent(line, acc.threshold+acc.sup))
				continue
			}
			acc.resolve(o.unit)
			acc = nil
		}
		if token.IsBlank(line) {
			continue
		}
		if token.IsComment(line) {
			if o.comments {
				pending = append(pending, strings.TrimLeft(line, " "))
			}
			continue
		}
		ind := token.Indent(line)
		depth := ind / o.unit
		if depth > len(path) {
			return nil, fmt.Errorf("%w: line %d: indentation jump", ErrMalformedInput, li+1)
		}
		path = path[:depth]
		key, value, ok := token.SplitKeyValue(line[ind:])
		if !ok {
			return nil, fmt.Errorf("%w: line %d: no key separator", ErrMalformedInput, li+1)
		}
		key = token.BareKey(key)
		parent, err := mappingAt(root, path)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", li+1, err)
		}
		var node *ir.Node
		switch hdr, isHdr := token.ParseBlockHeader(value); {
		case isHdr:
			node = ir.FromScalar("")
			acc = &blockAcc{
				node:      node,
				header:    hdr,
				threshold: ind,
				sup:       hdr.Supplement(o.unit),
			}
			parent.Set(key, node)
			path = append(path, key)
		case value == "":
			node = ir.NewMapping()
			parent.Set(key, node)
			path = append(path, key)
		case value == "null":
			node = ir.Null()
			parent.Set(key, node)
		default:
			node = ir.FromScalar(token.UnquoteValue(value))
			parent.Set(key, node)
		}
		if len(pending) > 0 {
			node.Comment = pending
			pending = nil
		}
	}
	if acc != nil {
		acc.resolve(o.unit)
	}
	if o.comments && len(pending) > 0 {
		// trailing comments with no entry to lead belong to the root
		root.Comment = pending
	}
	if debug.Parse() {
		debug.Logf("parse: %d top-level entries\n", root.Len())
	}
	return root, nil
}

// resolve turns the accumulated body into the block's final string
// value per the header's indentation indicator and chomp rule.
func (a *blockAcc) resolve(unit int) {
	extra := strings.Repeat(" ", max(a.sup-unit, 0))
	lines := make([]string, len(a.lines))
	for i, ln := range a.lines {
		if ln != "" {
			lines[i] = extra + ln
		}
	}
	s := strings.Join(lines, "\n") + "\n"
	switch a.header.Chomp {
	case token.ChompStrip:
		s = strings.TrimRight(s, "\n")
	case token.ChompKeep:
	default:
		s = strings.TrimRight(s, "\n") + "\n"
	}
	a.node.Scalar = s
}

func stripIndent(line string, n int) string {
	return line[min(n, token.Indent(line)):]
}

func mappingAt(root *ir.Node, path []string) (*ir.Node, error) {
	at := root
	for _, key := range path {
		next, ok := at.Get(key)
		if !ok || next.Type != ir.MappingType {
			return nil, fmt.Errorf("%w: no mapping at %q", ErrMalformedInput, key)
		}
		at = next
	}
	return at, nil
}
