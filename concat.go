package codize

// Concat renders its children back-to-back with no separator and no
// indentation change of its own.
type Concat []Code

// Cat builds a concatenation from the given fragments.
func Cat(items ...Code) Concat {
	return Concat(items)
}

// ShouldInline always reports false.
func (c Concat) ShouldInline() bool { return false }

// IsEmpty reports whether every child is empty.
func (c Concat) IsEmpty() bool {
	for _, item := range c {
		if !item.IsEmpty() {
			return false
		}
	}
	return true
}

func (c Concat) sizeHint() int {
	n := 0
	for _, item := range c {
		n += item.sizeHint()
	}
	return n
}

func (c Concat) formatInto(f *Format, w *writer, connect bool, indent string) {
	// Only the first child may continue the enclosing line.
	for i, item := range c {
		item.formatInto(f, w, connect && i == 0, indent)
	}
}

func (c Concat) String() string { return Render(c) }
