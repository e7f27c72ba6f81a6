package main

import "testing"

type canonTest struct {
	in, out string
}

var canonTests = []canonTest{
	{
		in:  "b: two\na: one\n",
		out: "a: one\nb: two\n",
	},
	{
		in:  "name:  John\nactive: YES\n",
		out: "active: \"YES\"\nname: John\n",
	},
	{
		in:  "bio: >\n  Line one\n  Line two\n",
		out: "bio: |\n  Line one Line two\n",
	},
	{
		in:  "# note\nz: last\na: first\n",
		out: "a: first\n# note\nz: last\n",
	},
}

func TestCanonical(t *testing.T) {
	cfg := &CleanConfig{MainConfig: &MainConfig{}}
	for _, ct := range canonTests {
		out, err := canonical(cfg, []byte(ct.in))
		if err != nil {
			t.Errorf("canonical(%q): %v", ct.in, err)
			continue
		}
		if out != ct.out {
			t.Errorf("canonical(%q): got %q, want %q", ct.in, out, ct.out)
		}
	}
}

func TestCanonicalNoSort(t *testing.T) {
	cfg := &CleanConfig{MainConfig: &MainConfig{}, NoSort: true}
	out, err := canonical(cfg, []byte("b: two\na: one\n"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "b: two\na: one\n" {
		t.Errorf("got %q", out)
	}
}
