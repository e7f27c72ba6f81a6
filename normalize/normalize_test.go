package normalize

import (
	"os"
	"path/filepath"
	"testing"
)

type normTest struct {
	name string
	in   string
	want string
}

var normTests = []normTest{
	{
		name: "canonical-passthrough",
		in: `name: John
bio: |
  Line one
  Line two
active: "YES"
`,
		want: `name: John
bio: |
  Line one
  Line two
active: "YES"
`,
	},
	{
		name: "fold-and-reserve",
		in: "name:  John \nbio: >\n  Line one\n  Line two\nactive: YES\n",
		want: `name: John
bio: |
  Line one Line two
active: "YES"
`,
	},
	{
		name: "bare-key-null",
		in:   "a:\nb: x\n",
		want: "a: null\nb: x\n",
	},
	{
		name: "bare-key-null-at-eof",
		in:   "a:\n",
		want: "a: null\n",
	},
	{
		name: "bare-key-opens-mapping",
		in:   "a:\n  b: x\n",
		want: "a:\n  b: x\n",
	},
	{
		name: "continuation-joined",
		in:   "msg: hello\n  world\n",
		want: "msg: hello world\n",
	},
	{
		name: "wrapped-quoted-value",
		in:   "title: \"Hello\n  wrapped world\"\n",
		want: "title: Hello wrapped world\n",
	},
	{
		name: "wrapped-quoted-value-then-entry",
		in:   "t: \"A\n  B\"\nnext: x\n",
		want: "t: A B\nnext: x\n",
	},
	{
		name: "strip-chomp-preserved",
		in:   "a: |-\n  x\nb: y\n",
		want: "a: |-\n  x\nb: y\n",
	},
	{
		name: "keep-chomp-preserved",
		in:   "a: |+\n  x\n\nb: y\n",
		want: "a: |+\n  x\n\nb: y\n",
	},
	{
		name: "folded-explicit-digit",
		in:   "f: >4\n    a\n    b\n",
		want: "f: |2\n  a b\n",
	},
	{
		name: "relative-block-indent-preserved",
		in:   "a: |\n    x\n      y\n",
		want: "a: |\n  x\n    y\n",
	},
	{
		name: "blank-line-inside-block",
		in:   "a: |\n  x\n\n  y\nb: z\n",
		want: "a: |\n  x\n\n  y\nb: z\n",
	},
	{
		name: "comment-lines-verbatim",
		in:   "# top\na: x\n  # nested\n",
		want: "# top\na: x\n  # nested\n",
	},
	{
		name: "trailing-blanks-dropped",
		in:   "a: x\n\n\n",
		want: "a: x\n",
	},
	{
		name: "exotic-quotes-cleaned",
		in:   "a: “hi”\n",
		want: "a: hi\n",
	},
	{
		name: "reserved-key-quoted",
		in:   "yes: x\n42: y\n",
		want: "\"yes\": x\n\"42\": y\n",
	},
	{
		name: "integer-value-quoted",
		in:   "count: 5\n",
		want: "count: \"5\"\n",
	},
	{
		name: "unicode-escape-decoded",
		in:   `emoji: \U0001F600` + "\n",
		want: "emoji: \U0001F600\n",
	},
	{
		name: "internal-whitespace-collapsed",
		in:   "a:   lots\t of   space\n",
		want: "a: lots of space\n",
	},
}

func TestNormalize(t *testing.T) {
	for _, nt := range normTests {
		got := string(Normalize([]byte(nt.in)))
		if got != nt.want {
			t.Errorf("%s: got\n%s\nwant\n%s", nt.name, got, nt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, nt := range normTests {
		once := Normalize([]byte(nt.in))
		twice := Normalize(once)
		if string(once) != string(twice) {
			t.Errorf("%s: not idempotent:\nonce:\n%s\ntwice:\n%s", nt.name, once, twice)
		}
	}
}

func TestNormalizeIndentUnit(t *testing.T) {
	in := "f: >\n    a\n    b\n"
	got := string(Normalize([]byte(in), IndentUnit(4)))
	want := "f: |\n    a b\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.yaml")
	if err := os.WriteFile(path, []byte("greet:  hi \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := File(path); err != nil {
		t.Fatalf("error normalizing: %v", err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "greet: hi\n" {
		t.Errorf("got %q", d)
	}
	if err := File(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
