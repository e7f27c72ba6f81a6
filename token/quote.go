package token

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// reservedBase are the boolean-like words YAML readers would coerce; a
// bare value equal to one of them (lower, Capitalized or UPPER) must be
// quoted to stay a string.
var reservedBase = []string{"yes", "no", "on", "off", "true", "false"}

var reservedWords = func() map[string]bool {
	m := map[string]bool{}
	for _, w := range reservedBase {
		m[w] = true
		m[strings.ToUpper(w)] = true
		m[strings.ToUpper(w[:1])+w[1:]] = true
	}
	return m
}()

func IsReserved(v string) bool {
	return reservedWords[v]
}

// exoticQuotes maps typographic quote glyphs, and the two-character
// run of two single quotes, to a plain single quote.
var exoticQuotes = strings.NewReplacer(
	"''", "'",
	"‘", "'", "’", "'", "‚", "'",
	"“", "'", "”", "'", "„", "'",
	"‹", "'", "›", "'",
	"«", "'", "»", "'",
)

// quoteGlyphs are the characters BareKey strips from around a key:
// plain double and single quotes plus the four curly variants.
var quoteGlyphs = map[rune]bool{
	'"': true, '\'': true,
	'‘': true, '’': true,
	'“': true, '”': true,
}

// intLike matches text YAML readers would coerce to an integer; it
// forces quoting for both keys and values.
var intLike = regexp.MustCompile(`^[+-]?\d+$`)

// CleanValue reduces a raw value to the form the quoting decision runs
// on: control characters dropped (newlines kept), space runs collapsed,
// ends trimmed, exotic quotes normalized, one layer of surrounding
// matching quotes removed and \U escapes decoded.
func CleanValue(raw string) string {
	v := stripControls(raw)
	v = collapseSpaces(v)
	v = strings.Trim(v, " ")
	v = exoticQuotes.Replace(v)
	v = stripMatching(v)
	return decodeUnicode(v)
}

// QuoteValue returns raw ready to be placed after "key: " in output,
// double-quoted when any ambiguity trigger holds.
func QuoteValue(raw string) string {
	v := CleanValue(raw)
	if !needsQuote(v) {
		return v
	}
	return `"` + v + `"`
}

// NeedsQuote reports whether the already-cleaned value v must be
// double-quoted. Every trigger is sufficient on its own.
func NeedsQuote(v string) bool {
	return needsQuote(v)
}

func needsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.Contains(v, ": ") || strings.Contains(v, " #") {
		return true
	}
	if strings.Contains(v, "\n") || strings.Contains(v, `\n`) {
		return true
	}
	if strings.HasPrefix(v, "- ") {
		return true
	}
	switch v[0] {
	case '{', '}', '|', '[', ']', '>', ':', '"', '\'', '*', '=', '%', ',', '!', '?', '&', '#', '@':
		return true
	}
	if v[len(v)-1] == ':' {
		return true
	}
	if IsReserved(v) || intLike.MatchString(v) {
		return true
	}
	if v[0] == ' ' || v[len(v)-1] == ' ' {
		return true
	}
	return false
}

// QuoteKey strips one layer of surrounding quote glyphs from raw and
// re-wraps the result in double quotes when a YAML reader would not
// take it as a plain string key.
func QuoteKey(raw string) string {
	k := BareKey(raw)
	if IsReserved(k) || intLike.MatchString(k) {
		return `"` + k + `"`
	}
	return k
}

// BareKey removes one layer of surrounding quote glyphs from a key.
func BareKey(raw string) string {
	if utf8.RuneCountInString(raw) < 2 {
		return raw
	}
	first, fsz := utf8.DecodeRuneInString(raw)
	last, lsz := utf8.DecodeLastRuneInString(raw)
	if quoteGlyphs[first] && quoteGlyphs[last] {
		return raw[fsz : len(raw)-lsz]
	}
	return raw
}

// UnquoteValue removes the surrounding double quotes the quoting engine
// adds. Unquoted input is returned as is.
func UnquoteValue(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

func stripControls(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\f', '\v':
			return -1
		}
		return r
	}, v)
}

func collapseSpaces(v string) string {
	if !strings.Contains(v, "  ") {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	inRun := false
	for _, r := range v {
		if r == ' ' {
			if inRun {
				continue
			}
			inRun = true
		} else {
			inRun = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stripMatching(v string) string {
	if len(v) < 2 {
		return v
	}
	switch v[0] {
	case '"', '\'':
		if v[len(v)-1] == v[0] {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// decodeUnicode rewrites \U followed by 8 hex digits into the literal
// code point. Malformed escapes pass through untouched.
func decodeUnicode(v string) string {
	i := strings.Index(v, `\U`)
	if i < 0 {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	for {
		b.WriteString(v[:i])
		v = v[i:]
		if len(v) >= 10 {
			if cp, err := strconv.ParseUint(v[2:10], 16, 32); err == nil && utf8.ValidRune(rune(cp)) {
				b.WriteRune(rune(cp))
				v = v[10:]
			} else {
				b.WriteString(v[:2])
				v = v[2:]
			}
		} else {
			b.WriteString(v[:2])
			v = v[2:]
		}
		i = strings.Index(v, `\U`)
		if i < 0 {
			b.WriteString(v)
			return b.String()
		}
	}
}
