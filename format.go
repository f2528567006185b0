package codize

import "strings"

// Format holds the rendering options.
type Format struct {
	// Indent is the number of spaces per indentation level. Negative
	// values mean one tab per level. The zero value falls back to 4.
	Indent int

	// TrailingNewline guarantees the joined output ends with exactly
	// one line terminator.
	TrailingNewline bool
}

// DefaultFormat returns the default options: 4 spaces, no trailing newline.
func DefaultFormat() Format {
	return Format{Indent: 4}
}

// Indent returns a format indenting with n spaces per level.
func Indent(n int) Format {
	return Format{Indent: n}
}

// IndentTab returns a format indenting with one tab per level.
func IndentTab() Format {
	return Indent(-1)
}

// WithTrailingNewline returns a copy of the format with the trailing
// newline guarantee set.
func (f Format) WithTrailingNewline(on bool) Format {
	f.TrailingNewline = on
	return f
}

func (f Format) withDefaults() Format {
	if f.Indent == 0 {
		f.Indent = 4
	}
	return f
}

// unit is the indentation added per block level.
func (f Format) unit() string {
	if f.Indent < 0 {
		return "\t"
	}
	return strings.Repeat(" ", f.Indent)
}

// RenderLines renders the fragment as an ordered sequence of lines. The
// caller owns the returned slice.
func (f Format) RenderLines(c Code) []string {
	f = f.withDefaults()
	w := &writer{}
	if n := c.sizeHint(); n > 0 {
		w.out = make([]string, 0, n)
	}
	c.formatInto(&f, w, false, "")
	return w.out
}

// Render renders the fragment and joins the lines with "\n".
func (f Format) Render(c Code) string {
	s := strings.Join(f.RenderLines(c), "\n")
	if f.TrailingNewline {
		s = strings.TrimRight(s, "\n") + "\n"
	}
	return s
}
