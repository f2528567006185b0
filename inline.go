package codize

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// BlockWithin returns an inline condition that collapses a block when its
// single-line rendering fits within limit display columns. Widths are
// measured in terminal cells, not bytes. The estimate counts one joining
// space per emitted part and may slightly over-count around empty texts;
// it never decides to inline something that cannot render on one line.
func BlockWithin(limit int) func(*Block) bool {
	return func(b *Block) bool {
		w, ok := blockWidth(b)
		return ok && w <= limit
	}
}

// ListWithin is the List counterpart of BlockWithin.
func ListWithin(limit int) func(*List) bool {
	return func(l *List) bool {
		w, ok := listWidth(l)
		return ok && w <= limit
	}
}

// blockWidth is the display width of the block's prospective single-line
// rendering, or false when some part cannot stay on one line.
func blockWidth(b *Block) (int, bool) {
	w := runewidth.StringWidth(b.Start)
	for _, c := range b.Body {
		if c.IsEmpty() {
			continue
		}
		cw, ok := singleLineWidth(c)
		if !ok {
			return 0, false
		}
		w += 1 + cw
	}
	return w + 1 + runewidth.StringWidth(b.End), true
}

func listWidth(l *List) (int, bool) {
	w, n := 0, 0
	for _, c := range l.body {
		if c.IsEmpty() {
			continue
		}
		cw, ok := singleLineWidth(c)
		if !ok {
			return 0, false
		}
		if n > 0 {
			w += runewidth.StringWidth(l.Separator) + 1
		}
		w += cw
		n++
	}
	if l.Trailing == TrailAlways {
		w += runewidth.StringWidth(l.Separator)
	}
	return w, true
}

func singleLineWidth(c Code) (int, bool) {
	switch v := c.(type) {
	case Line:
		if strings.ContainsRune(string(v), '\n') {
			return 0, false
		}
		return runewidth.StringWidth(string(v)), true
	case *Block:
		if !v.ShouldInline() {
			return 0, false
		}
		return blockWidth(v)
	case *List:
		// An inlining list stays on one line, as does a list whose
		// output is a single connected item.
		if !v.ShouldInline() && !singleItem(v) {
			return 0, false
		}
		return listWidth(v)
	case Concat:
		// Children past the first always start fresh lines, so only a
		// concat whose sole non-empty child comes first qualifies.
		var only Code
		for i, item := range v {
			if item.IsEmpty() {
				continue
			}
			if i != 0 || only != nil {
				return 0, false
			}
			only = item
		}
		if only == nil {
			return 0, true
		}
		return singleLineWidth(only)
	}
	return 0, false
}

func singleItem(l *List) bool {
	n := 0
	for _, c := range l.body {
		if !c.IsEmpty() {
			n++
		}
	}
	return n == 1
}
