package codize

import "fmt"

// Line is one atomic line of output. The text is treated as opaque: an
// embedded line terminator is emitted verbatim, not split, and will
// visually break indentation — keeping line text terminator-free is the
// caller's responsibility.
type Line string

// Ln builds a Line from text.
func Ln(text string) Line {
	return Line(text)
}

// Lnf builds a Line from a format string.
func Lnf(format string, args ...any) Line {
	return Line(fmt.Sprintf(format, args...))
}

// ShouldInline always reports false: a lone line has no inline decision
// of its own, but it is eligible to join a connect chain.
func (l Line) ShouldInline() bool { return false }

// IsEmpty always reports false: even an empty Line emits a blank line.
func (l Line) IsEmpty() bool { return false }

func (l Line) sizeHint() int { return 1 }

func (l Line) formatInto(_ *Format, w *writer, connect bool, indent string) {
	w.appendLine(string(l), connect, indent)
}

func (l Line) String() string { return Render(l) }
