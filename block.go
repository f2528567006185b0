package codize

// Block is a start line, a body, and an end line. The body renders one
// indentation level deeper unless the block decides to inline, in which
// case everything collapses onto the start's line.
type Block struct {
	// Connect glues Start onto the end of the previously emitted line,
	// producing cascading continuations such as "} else {".
	Connect bool
	// Start and End are individual line texts.
	Start string
	End   string
	// Body is the ordered sequence of child fragments, rendered
	// back-to-back like a Concat.
	Body []Code

	inline func(*Block) bool
}

// NewBlock builds a block from a start token, a body and an end token.
func NewBlock(start string, body []Code, end string) *Block {
	return &Block{Start: start, Body: body, End: end}
}

// Connected marks the block's start line as a continuation of the
// previous line and returns the block.
func (b *Block) Connected() *Block {
	b.Connect = true
	return b
}

// InlineWhen attaches a condition deciding whether the whole block
// renders as a single line. The condition must be a pure function of the
// block's own fields.
func (b *Block) InlineWhen(cond func(*Block) bool) *Block {
	b.inline = cond
	return b
}

// Inlined forces the block to always render as a single line.
func (b *Block) Inlined() *Block {
	return b.InlineWhen(func(*Block) bool { return true })
}

// ShouldInline reports whether the block renders as a single line, using
// the attached condition or the intrinsic rule.
func (b *Block) ShouldInline() bool {
	if b.inline != nil {
		return b.inline(b)
	}
	return b.ShouldInlineIntrinsic()
}

// ShouldInlineIntrinsic is the default inline rule: the body is exactly
// one child that itself renders as a single line.
func (b *Block) ShouldInlineIntrinsic() bool {
	return len(b.Body) == 1 && b.Body[0].ShouldInline()
}

// IsEmpty always reports false: an empty-bodied block still emits its
// start and end lines.
func (b *Block) IsEmpty() bool { return false }

// sizeHint over-estimates when the block inlines, never under-estimates.
func (b *Block) sizeHint() int {
	n := 2
	for _, c := range b.Body {
		n += c.sizeHint()
	}
	return n
}

func (b *Block) formatInto(f *Format, w *writer, connect bool, indent string) {
	w.appendLine(b.Start, connect || b.Connect, indent)
	inline := b.ShouldInline()
	if inline {
		for _, c := range b.Body {
			c.formatInto(f, w, true, indent)
		}
	} else {
		inner := indent + f.unit()
		for _, c := range b.Body {
			c.formatInto(f, w, false, inner)
		}
	}
	// On an inlined block the end glues onto the last body line;
	// otherwise it starts its own line at the original indent.
	w.appendLine(b.End, inline, indent)
}

func (b *Block) String() string { return Render(b) }
