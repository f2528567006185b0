package codize

import (
	"strings"
	"testing"
)

func TestConcatEmpty(t *testing.T) {
	if got := Render(Cat()); got != "" {
		t.Fatalf("empty concat mismatch: got %q", got)
	}
	if !Cat().IsEmpty() {
		t.Fatalf("zero-child concat should be empty")
	}
	if !Cat(EmptyList(","), Cat()).IsEmpty() {
		t.Fatalf("concat of empty children should be empty")
	}
}

func TestConcatSequential(t *testing.T) {
	code := Cat(
		NewBlock("fn main() {", LinesOf("foo();"), "}"),
		Ln(""),
		NewBlock("fn foo() {", LinesOf("bar();"), "}"),
	)
	want := strings.Join([]string{
		"fn main() {",
		"    foo();",
		"}",
		"",
		"fn foo() {",
		"    bar();",
		"}",
	}, "\n")
	if got := Render(code); got != want {
		t.Fatalf("concat mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestConcatOnlyFirstConnects(t *testing.T) {
	// Inside an inlined block the concat's first child continues the
	// start line; the second starts fresh even though the block asked
	// for a single line.
	code := NewBlock("{", []Code{Cat(Ln("a"), Ln("b"))}, "}").Inlined()
	want := "{ a\nb }"
	if got := Render(code); got != want {
		t.Fatalf("concat connect mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestConcatNoIndentOfItsOwn(t *testing.T) {
	code := NewBlock("{", []Code{Cat(Ln("a"), Ln("b"))}, "}")
	want := "{\n    a\n    b\n}"
	if got := Render(code); got != want {
		t.Fatalf("concat indent mismatch:\nwant %q\ngot  %q", want, got)
	}
}
