package token

import (
	"strconv"
	"strings"
)

// DefaultIndentUnit is the number of spaces per nesting level in the
// canonical form.
const DefaultIndentUnit = 2

type Chomp int

const (
	// ChompClip resolves a block to exactly one trailing newline.
	ChompClip Chomp = iota
	// ChompStrip (the - indicator) removes all trailing newlines.
	ChompStrip
	// ChompKeep (the + indicator) keeps trailing newlines as written.
	ChompKeep
)

func (c Chomp) String() string {
	switch c {
	case ChompStrip:
		return "-"
	case ChompKeep:
		return "+"
	default:
		return ""
	}
}

// BlockHeader describes the value side of a block scalar opener such as
// "|", ">2" or "|+".
type BlockHeader struct {
	Folded bool
	Indent int // explicit indentation indicator, 0 when absent
	Chomp  Chomp
}

// ParseBlockHeader recognizes a block scalar header value. It accepts
// exactly a style character, an optional indentation digit and an
// optional chomp indicator.
func ParseBlockHeader(value string) (*BlockHeader, bool) {
	if value == "" {
		return nil, false
	}
	h := &BlockHeader{}
	switch value[0] {
	case '|':
	case '>':
		h.Folded = true
	default:
		return nil, false
	}
	rest := value[1:]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		h.Indent = h.Indent*10 + int(rest[i]-'0')
		i++
	}
	switch rest[i:] {
	case "":
	case "-":
		h.Chomp = ChompStrip
	case "+":
		h.Chomp = ChompKeep
	default:
		return nil, false
	}
	return h, true
}

// Token renders the header back to its text form, always literal style.
func (h *BlockHeader) Token() string {
	s := "|"
	if h.Indent > 0 {
		s += strconv.Itoa(h.Indent)
	}
	return s + h.Chomp.String()
}

// Supplement is the indentation step of the block body under its
// header: the explicit indicator when present, one unit otherwise.
func (h *BlockHeader) Supplement(unit int) int {
	if h.Indent > 0 {
		return h.Indent
	}
	return unit
}

// Indent counts the leading spaces of a physical line.
func Indent(line string) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}

// IsBlank reports whether the line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsComment reports whether the line is a comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " "), "#")
}

// SplitKeyValue splits a line on its first colon into the key part and
// the value part, dropping the single space after the colon. ok is
// false when the line has no colon.
func SplitKeyValue(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	return key, value, true
}
