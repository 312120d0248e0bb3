package format

import "testing"

func TestClassifyObject(t *testing.T) {
	obj, ok := Classify(`{"b":1,"a":{"nested":true},"c":"x"}`)
	if !ok {
		t.Fatal("Classify = opaque, want object")
	}
	keys := make([]string, 0, len(obj.Members))
	for _, m := range obj.Members {
		keys = append(keys, m.Key)
	}
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Fatalf("member keys = %v, want source order [b a c]", keys)
	}
}

func TestClassifyAllowsSurroundingWhitespace(t *testing.T) {
	if _, ok := Classify("  {\"a\":1}\t"); !ok {
		t.Fatal("Classify = opaque, want object for padded JSON")
	}
}

func TestClassifyOpaque(t *testing.T) {
	lines := []string{
		"not json at all",
		"",
		"[1,2,3]",
		`"just a string"`,
		"12345",
		"true",
		"null",
		`{"a":}`,
		`{"a":1} trailing`,
		`{"a":1}{"b":2}`,
		"{",
	}
	for _, line := range lines {
		if _, ok := Classify(line); ok {
			t.Fatalf("Classify(%q) = object, want opaque", line)
		}
	}
}

func TestClassifyKeepsRawValues(t *testing.T) {
	obj, ok := Classify(`{"n":5,"f":1.50,"s":"a\"b"}`)
	if !ok {
		t.Fatal("Classify = opaque, want object")
	}
	if got := string(obj.Members[1].Value); got != "1.50" {
		t.Fatalf("raw value = %q, want original literal 1.50", got)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"hello"`, "hello"},
		{`"a\"b"`, `a"b`},
		{`5`, "5"},
		{`1.25`, "1.25"},
		{`true`, "true"},
		{`[1, 2]`, "[1,2]"},
		{`{"k": "v"}`, `{"k":"v"}`},
	}
	for _, c := range cases {
		if got := stringify([]byte(c.raw)); got != c.want {
			t.Fatalf("stringify(%s) = %q, want %q", c.raw, got, c.want)
		}
	}
}
