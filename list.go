package codize

// Trailing selects the trailing-separator policy of a List.
type Trailing int

const (
	// TrailIfMultiLine adds a trailing separator only when the list is
	// split across multiple lines. This is the default.
	TrailIfMultiLine Trailing = iota
	// TrailAlways adds a trailing separator unconditionally.
	TrailAlways
	// TrailNever never adds a trailing separator.
	TrailNever
)

// List is an ordered sequence of fragments joined by a separator. The
// separator carries no spacing of its own; the joining space comes from
// the connect mechanism. Lists do not add an indentation level.
type List struct {
	// Separator is injected between consecutive non-empty items.
	Separator string
	// Trailing is the trailing-separator policy.
	Trailing Trailing

	body   []Code
	inline func(*List) bool
}

// NewList builds a list from a separator token and a body.
func NewList(sep string, body []Code) *List {
	return &List{Separator: sep, body: body}
}

// EmptyList builds a list with no items. It renders to nothing.
func EmptyList(sep string) *List {
	return NewList(sep, nil)
}

// NoTrail disables the trailing separator and returns the list.
func (l *List) NoTrail() *List {
	l.Trailing = TrailNever
	return l
}

// AlwaysTrail adds a trailing separator even on a single-line list and
// returns the list.
func (l *List) AlwaysTrail() *List {
	l.Trailing = TrailAlways
	return l
}

// InlineWhen attaches a condition deciding whether the whole list
// renders as a single line. The condition must be a pure function of the
// list's own fields.
func (l *List) InlineWhen(cond func(*List) bool) *List {
	l.inline = cond
	return l
}

// Inlined forces the list to always render as a single line.
func (l *List) Inlined() *List {
	return l.InlineWhen(func(*List) bool { return true })
}

// Body returns the items of the list.
func (l *List) Body() []Code {
	return l.body
}

// ShouldInline reports whether the list renders as a single line, using
// the attached condition or the intrinsic rule.
func (l *List) ShouldInline() bool {
	if l.inline != nil {
		return l.inline(l)
	}
	return l.ShouldInlineIntrinsic()
}

// ShouldInlineIntrinsic is the default inline rule: exactly one item
// emits output, and that item itself renders as a single line.
func (l *List) ShouldInlineIntrinsic() bool {
	var only Code
	for _, c := range l.body {
		if c.IsEmpty() {
			continue
		}
		if only != nil {
			return false
		}
		only = c
	}
	return only != nil && only.ShouldInline()
}

// IsEmpty reports whether every item is empty.
func (l *List) IsEmpty() bool {
	for _, c := range l.body {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (l *List) sizeHint() int {
	n := 0
	for _, c := range l.body {
		n += c.sizeHint()
	}
	return n
}

func (l *List) formatInto(f *Format, w *writer, connect bool, indent string) {
	inline := l.ShouldInline()

	// Whether a previous item has been emitted, controlling separators.
	firstAppended := false
	// Whether the next item may glue onto the previous one.
	prevAllowConnect := connect

	prevSize := w.len()
	initialSize := prevSize

	for _, item := range l.body {
		if item.IsEmpty() {
			continue
		}
		if firstAppended {
			w.appendToLast(l.Separator)
		}
		itemConnect := connect
		if firstAppended {
			// A block that decided to inline always starts fresh;
			// everything else may continue the previous line.
			itemConnect = inline || (prevAllowConnect && allowConnect(item))
		}
		item.formatInto(f, w, itemConnect, indent)
		// Only a multi-line item lets the next one connect.
		newSize := w.len()
		prevAllowConnect = newSize > prevSize+1
		prevSize = newSize
		firstAppended = true
	}

	var trail bool
	switch l.Trailing {
	case TrailIfMultiLine:
		trail = prevSize > initialSize+1
	case TrailAlways:
		trail = true
	case TrailNever:
		trail = false
	}
	if trail {
		w.appendToLast(l.Separator)
	}
}

func allowConnect(c Code) bool {
	if b, ok := c.(*Block); ok {
		return !b.ShouldInline()
	}
	return true
}

func (l *List) String() string { return Render(l) }
