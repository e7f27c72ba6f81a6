package ir

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	inner := NewMapping()
	inner.Set("first", FromScalar("line one\nline two\n"))
	m := NewMapping()
	m.Set("z", FromScalar("26"))
	m.Set("a", inner)
	m.Set("gone", Null())

	d, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("error marshaling: %v", err)
	}
	want := `{"z":"26","a":{"first":"line one\nline two\n"},"gone":null}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}
