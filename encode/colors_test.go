package encode_test

import (
	"strings"
	"testing"

	"github.com/locyaml/locyaml/encode"
	"github.com/locyaml/locyaml/ir"
)

func TestColors(t *testing.T) {
	c := encode.NewColors()
	for _, attr := range []encode.ColorAttr{
		encode.KeyColor, encode.ValueColor, encode.NullColor,
		encode.BlockColor, encode.CommentColor,
	} {
		if got := c.Color(attr, "abc"); !strings.Contains(got, "abc") {
			t.Errorf("Color(%d): %q lost its text", attr, got)
		}
	}
	// unknown attributes fall back to the default painter
	if got := c.Color(encode.ColorAttr(99), "xyz"); !strings.Contains(got, "xyz") {
		t.Errorf("default color: %q lost its text", got)
	}
}

func TestEncodeColorsOption(t *testing.T) {
	m := ir.NewMapping().Set("a", ir.FromScalar("x"))
	got, err := encode.String(m, encode.EncodeColors(encode.NewColors()))
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	if !strings.Contains(got, "a") || !strings.Contains(got, "x") {
		t.Errorf("colored output lost content: %q", got)
	}
}
