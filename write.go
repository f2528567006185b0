package codize

import "strings"

// writer accumulates rendered output lines. appendLine is the only place
// where indentation prefixing and connect joins happen; every renderer
// funnels through it.
type writer struct {
	out []string
}

func (w *writer) len() int {
	return len(w.out)
}

// appendLine adds one logical line. With connect set and a previous line
// present, text is glued onto that line instead, with a single joining
// space unless the line is empty or is a bare indent placeholder.
func (w *writer) appendLine(text string, connect bool, indent string) {
	if connect && len(w.out) > 0 {
		last := &w.out[len(w.out)-1]
		if *last != "" && *last != indent {
			*last += " "
		}
		*last += text
		return
	}
	// Starting a new line: collapse a whitespace-only previous line so
	// blank lines do not carry dangling indentation.
	if n := len(w.out); n > 0 && strings.TrimSpace(w.out[n-1]) == "" {
		w.out[n-1] = ""
	}
	if indent == "" {
		w.out = append(w.out, text)
	} else {
		w.out = append(w.out, indent+text)
	}
}

// appendToLast appends text to the most recent line, if any. Used for
// list separators, which never start lines of their own.
func (w *writer) appendToLast(text string) {
	if n := len(w.out); n > 0 {
		w.out[n-1] += text
	}
}
