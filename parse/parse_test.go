package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/locyaml/locyaml/ir"
)

func TestParse(t *testing.T) {
	doc := `name: John
bio: |
  Line one
  Line two
active: "YES"
`
	got, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	want := ir.NewMapping().
		Set("name", ir.FromScalar("John")).
		Set("bio", ir.FromScalar("Line one\nLine two\n")).
		Set("active", ir.FromScalar("YES"))
	if d := cmp.Diff(want, got); d != "" {
		t.Fatal(d)
	}
}

func TestParseBlockChomp(t *testing.T) {
	bts := []struct {
		name string
		in   string
		want string
	}{
		{name: "clip", in: "a: |\n  x\n", want: "x\n"},
		{name: "clip-extra-blanks", in: "a: |\n  x\n\n\n", want: "x\n"},
		{name: "strip", in: "a: |-\n  x\n", want: "x"},
		{name: "keep", in: "a: |+\n  x\n\n", want: "x\n\n"},
		{name: "keep-single", in: "a: |+\n  x\n", want: "x\n"},
		{name: "interior-blank", in: "a: |\n  x\n\n  y\n", want: "x\n\ny\n"},
		{name: "explicit-digit", in: "a: |4\n    x\n", want: "  x\n"},
		{name: "digit-two", in: "a: |2\n    x\n", want: "  x\n"},
		{name: "relative-indent", in: "a: |\n  x\n    y\n", want: "x\n  y\n"},
		{name: "empty-body", in: "a: |\n", want: "\n"},
	}
	for _, bt := range bts {
		node, err := Parse([]byte(bt.in))
		if err != nil {
			t.Errorf("%s: error decoding: %v", bt.name, err)
			continue
		}
		v, ok := node.Get("a")
		if !ok || v.Type != ir.ScalarType {
			t.Errorf("%s: no scalar at a", bt.name)
			continue
		}
		if v.Scalar != bt.want {
			t.Errorf("%s: got %q, want %q", bt.name, v.Scalar, bt.want)
		}
	}
}

func TestParseNesting(t *testing.T) {
	doc := `app:
  title: Demo
  labels:
    ok: Save
deprecated: null
"yes": still a string key
`
	got, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	want := ir.NewMapping().
		Set("app", ir.NewMapping().
			Set("title", ir.FromScalar("Demo")).
			Set("labels", ir.NewMapping().
				Set("ok", ir.FromScalar("Save")))).
		Set("deprecated", ir.Null()).
		Set("yes", ir.FromScalar("still a string key"))
	if d := cmp.Diff(want, got); d != "" {
		t.Fatal(d)
	}
}

func TestParseSiblingAfterBlock(t *testing.T) {
	doc := `bio: |
  first
  second
next: value
`
	got, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	if v, _ := got.Get("bio"); v == nil || v.Scalar != "first\nsecond\n" {
		t.Errorf("bio: got %+v", v)
	}
	if v, _ := got.Get("next"); v == nil || v.Scalar != "value" {
		t.Errorf("next: got %+v", v)
	}
}

func TestParseComments(t *testing.T) {
	doc := `# leading
a: x
# trailing
`
	got, err := Parse([]byte(doc), Comments(true))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	v, _ := got.Get("a")
	if v == nil || len(v.Comment) != 1 || v.Comment[0] != "# leading" {
		t.Errorf("entry comment: got %+v", v)
	}
	if len(got.Comment) != 1 || got.Comment[0] != "# trailing" {
		t.Errorf("root comment: got %v", got.Comment)
	}

	plain, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	v, _ = plain.Get("a")
	if v == nil || v.Comment != nil {
		t.Errorf("comments kept without the option: %+v", v)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{
		"no separator\n",
		"a: x\n    b: y\n",
		"a: x\n  b: y\n",
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Parse(%q): got %v, want ErrMalformedInput", in, err)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("got %d entries, want 0", got.Len())
	}
}
