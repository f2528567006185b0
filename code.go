package codize

// Code is one node of a fragment tree: a Line, a *Block, a *List or a
// Concat. The set of implementations is closed; rendering never mutates
// the tree, so a tree may be rendered any number of times.
type Code interface {
	// ShouldInline reports whether the node would render as a single
	// visual line. True only for blocks and lists that decided to
	// inline; lines and concatenations always report false.
	ShouldInline() bool

	// IsEmpty reports whether the node emits no output at all. True
	// only for lists and concatenations with zero non-empty children;
	// a Line or a Block always emits something.
	IsEmpty() bool

	// sizeHint is an upper bound on the number of lines the node can
	// emit, used to pre-size the output. Zero skips pre-sizing.
	sizeHint() int

	// formatInto emits the node into w. connect glues the first emitted
	// text onto the end of the previous line instead of starting a new
	// one; indent is the accumulated prefix for fresh lines.
	formatInto(f *Format, w *writer, connect bool, indent string)
}

// Render renders the fragment with the default format.
func Render(c Code) string {
	return DefaultFormat().Render(c)
}

// RenderLines renders the fragment with the default format as raw lines.
func RenderLines(c Code) []string {
	return DefaultFormat().RenderLines(c)
}

// LinesOf converts plain strings into a body of Line fragments.
func LinesOf(texts ...string) []Code {
	body := make([]Code, len(texts))
	for i, t := range texts {
		body[i] = Line(t)
	}
	return body
}
