package codize

import (
	"strings"
	"testing"
)

func TestBlockWithin(t *testing.T) {
	build := func(limit int) *Block {
		return NewBlock("call(", []Code{
			NewList(",", LinesOf("a", "b", "c")).Inlined(),
		}, ")").InlineWhen(BlockWithin(limit))
	}

	// "call( a, b, c )" is 15 columns.
	if got := Render(build(15)); got != "call( a, b, c )" {
		t.Fatalf("within limit mismatch: got %q", got)
	}
	want := "call(\n    a, b, c\n)"
	if got := Render(build(14)); got != want {
		t.Fatalf("over limit mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestBlockWithinMultiLineChild(t *testing.T) {
	// A child that cannot render on one line disqualifies the block no
	// matter the limit.
	b := NewBlock("{", []Code{
		NewBlock("{", LinesOf("x", "y"), "}"),
	}, "}").InlineWhen(BlockWithin(1000))
	if b.ShouldInline() {
		t.Fatalf("block with multi-line child should not inline")
	}
	if got := Render(b); !strings.Contains(got, "\n") {
		t.Fatalf("expected multi-line output, got %q", got)
	}
}

func TestListWithinDisplayWidth(t *testing.T) {
	// Widths are display columns: each CJK rune counts two cells, so
	// "世界, 世界" occupies 10 columns even though it has 6 runes.
	build := func(limit int) *List {
		return NewList(",", LinesOf("世界", "世界")).InlineWhen(ListWithin(limit))
	}
	if got := Render(build(10)); got != "世界, 世界" {
		t.Fatalf("within limit mismatch: got %q", got)
	}
	if got := Render(build(9)); got != "世界,\n世界," {
		t.Fatalf("over limit mismatch: got %q", got)
	}
}

func TestListWithinOpaqueTerminator(t *testing.T) {
	l := NewList(",", []Code{Ln("a\nb")}).InlineWhen(ListWithin(1000))
	if l.ShouldInline() {
		t.Fatalf("item with embedded terminator should not inline")
	}
}
