// Package normalize rewrites a raw translation file into the strict
// canonical dialect: one logical key/value per line, canonical quoting,
// literal block scalars, two-space indentation.
//
// The scanner is a single forward pass with three named modes. Open
// multi-line regions (block scalars and erroneously wrapped quoted
// values) are buffered in a pending accumulator and flushed as a whole
// when the region closes, so committed output is never rewritten.
package normalize

import (
	"strings"

	"github.com/locyaml/locyaml/debug"
	"github.com/locyaml/locyaml/token"
)

type mode int

const (
	modeNormal mode = iota
	modeBlock
	modeWeird
)

type scanner struct {
	unit int
	out  []string
	mode mode

	// open block scalar
	header     *token.BlockHeader
	headerKey  string
	openIndent int
	body       []string

	// open weird block: a quoted value hard-wrapped across lines,
	// detected by an odd count of its leading quote character
	weirdKey    string
	weirdIndent int
	parts       []string
}

// Normalize returns the canonical form of src. It never fails:
// malformed input is repaired on a best-effort, line-by-line basis.
func Normalize(src []byte, options ...Option) []byte {
	o := getOpts(options)
	lines := strings.Split(string(src), "\n")
	for len(lines) > 0 && token.IsBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	s := &scanner{unit: o.unit}
	for i, raw := range lines {
		s.line(prep(raw), i == len(lines)-1)
	}
	s.finish()
	return []byte(strings.Join(s.out, "\n") + "\n")
}

// prep collapses whitespace runs after the indentation to single spaces
// and right-trims the line. Indentation is left untouched.
func prep(line string) string {
	ind := token.Indent(line)
	b := &strings.Builder{}
	b.Grow(len(line))
	b.WriteString(line[:ind])
	inRun := false
	for _, r := range line[ind:] {
		switch r {
		case ' ', '\t':
			if inRun {
				continue
			}
			inRun = true
			b.WriteByte(' ')
		default:
			inRun = false
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (s *scanner) line(line string, last bool) {
	switch s.mode {
	case modeBlock:
		if token.IsBlank(line) || token.Indent(line) > s.openIndent {
			s.body = append(s.body, line)
			if last {
				s.closeBlock()
			}
			return
		}
		s.closeBlock()
	case modeWeird:
		if token.IsBlank(line) {
			if last {
				s.closeWeird()
			}
			return
		}
		if token.Indent(line) > s.weirdIndent {
			s.parts = append(s.parts, strings.TrimSpace(line))
			if last {
				s.closeWeird()
			}
			return
		}
		s.closeWeird()
	}
	s.normal(line, last)
}

func (s *scanner) normal(line string, last bool) {
	if token.IsBlank(line) {
		return
	}
	ind := token.Indent(line)
	s.fixBareKey(ind)
	if token.IsComment(line) {
		s.out = append(s.out, line)
		return
	}
	key, value, ok := token.SplitKeyValue(line)
	if !ok {
		s.continuation(line)
		return
	}
	if hdr, isHdr := token.ParseBlockHeader(value); isHdr {
		s.mode = modeBlock
		s.header = hdr
		s.headerKey = key
		s.openIndent = ind
		s.body = nil
		if last {
			s.closeBlock()
		}
		return
	}
	pad := strings.Repeat(" ", ind)
	if value == "" {
		bare := pad + token.QuoteKey(key) + ":"
		if last {
			bare += " null"
		}
		s.out = append(s.out, bare)
		return
	}
	if q := value[0]; (q == '"' || q == '\'') && strings.Count(value, string(q))%2 == 1 {
		s.mode = modeWeird
		s.weirdKey = key
		s.weirdIndent = ind
		s.parts = []string{value}
		if last {
			s.closeWeird()
		}
		return
	}
	s.out = append(s.out, pad+token.QuoteKey(key)+": "+token.QuoteValue(value))
}

// fixBareKey retroactively turns the previous "key:" line into
// "key: null" when the current line does not open a nested mapping
// under it.
func (s *scanner) fixBareKey(ind int) {
	n := len(s.out)
	if n == 0 {
		return
	}
	prev := s.out[n-1]
	if token.IsComment(prev) {
		return
	}
	_, v, ok := token.SplitKeyValue(prev)
	if !ok || v != "" {
		return
	}
	if ind > token.Indent(prev) {
		return
	}
	s.out[n-1] = prev + " null"
}

// continuation folds a colon-free line into the previous logical line,
// re-running the merged value through the quoting engine.
func (s *scanner) continuation(line string) {
	frag := strings.TrimSpace(line)
	n := len(s.out)
	if n == 0 {
		s.out = append(s.out, frag)
		return
	}
	prev := s.out[n-1]
	key, value, ok := token.SplitKeyValue(prev)
	if !ok || token.IsComment(prev) {
		s.out[n-1] = prev + " " + frag
		return
	}
	pad := strings.Repeat(" ", token.Indent(prev))
	merged := strings.TrimSpace(value + " " + frag)
	s.out[n-1] = pad + key + ": " + token.QuoteValue(merged)
}

func (s *scanner) closeBlock() {
	s.mode = modeNormal
	if debug.Normalize() {
		debug.Logf("normalize: closing %q block, %d body lines\n",
			s.header.Token(), len(s.body))
	}
	base := -1
	for _, ln := range s.body {
		if token.IsBlank(ln) {
			continue
		}
		if i := token.Indent(ln); base < 0 || i < base {
			base = i
		}
	}
	if base < 0 {
		base = 0
	}
	pad := strings.Repeat(" ", s.openIndent)
	if s.header.Folded {
		nh := &token.BlockHeader{Chomp: s.header.Chomp}
		if s.header.Indent > 0 {
			nh.Indent = max(s.header.Indent-s.unit, 0)
		}
		s.out = append(s.out, pad+token.QuoteKey(s.headerKey)+": "+nh.Token())
		joined := []string{}
		for _, ln := range s.body {
			if token.IsBlank(ln) {
				continue
			}
			joined = append(joined, strings.TrimSpace(ln))
		}
		if len(joined) > 0 {
			body := strings.Repeat(" ", s.openIndent+nh.Supplement(s.unit))
			s.out = append(s.out, body+strings.Join(joined, " "))
		}
		return
	}
	s.out = append(s.out, pad+token.QuoteKey(s.headerKey)+": "+s.header.Token())
	body := strings.Repeat(" ", s.openIndent+s.header.Supplement(s.unit))
	for _, ln := range s.body {
		if token.IsBlank(ln) {
			s.out = append(s.out, "")
			continue
		}
		s.out = append(s.out, body+ln[min(base, token.Indent(ln)):])
	}
}

func (s *scanner) closeWeird() {
	s.mode = modeNormal
	merged := strings.Join(s.parts, " ")
	if debug.Normalize() {
		debug.Logf("normalize: merged wrapped value for %q\n", s.weirdKey)
	}
	pad := strings.Repeat(" ", s.weirdIndent)
	s.out = append(s.out, pad+token.QuoteKey(s.weirdKey)+": "+token.QuoteValue(merged))
}

func (s *scanner) finish() {
	switch s.mode {
	case modeBlock:
		s.closeBlock()
	case modeWeird:
		s.closeWeird()
	}
}
