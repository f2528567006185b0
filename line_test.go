package codize

import "testing"

func TestLineEmpty(t *testing.T) {
	if got := Render(Ln("")); got != "" {
		t.Fatalf("empty line mismatch: got %q", got)
	}
	if Ln("").IsEmpty() {
		t.Fatalf("a Line is never empty")
	}
}

func TestLineLiteral(t *testing.T) {
	if got := Ln("hello world").String(); got != "hello world" {
		t.Fatalf("literal mismatch: got %q", got)
	}
}

func TestLineFormatted(t *testing.T) {
	if got := Lnf("hello %d", 1).String(); got != "hello 1" {
		t.Fatalf("formatted mismatch: got %q", got)
	}
	if got := Lnf("hello %d %d %d %s", 1, 2, 3, "world").String(); got != "hello 1 2 3 world" {
		t.Fatalf("formatted mismatch: got %q", got)
	}
}

func TestLineOpaqueTerminator(t *testing.T) {
	// An embedded terminator is opaque content, emitted verbatim.
	code := NewBlock("{", []Code{Ln("a\nb")}, "}")
	want := "{\n    a\nb\n}"
	if got := Render(code); got != want {
		t.Fatalf("opaque terminator mismatch:\nwant %q\ngot  %q", want, got)
	}
}
