// Package document decodes declarative TOML descriptions of fragment
// trees into renderable codize values. It is the input format of the
// codize CLI; the library itself never touches it.
package document

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/Pistonite/codize"
)

var (
	// ErrUnknownKind indicates a fragment with an unrecognized kind.
	ErrUnknownKind = errors.New("unknown fragment kind")
	// ErrBadTrailing indicates an unrecognized list trailing mode.
	ErrBadTrailing = errors.New("unknown trailing mode")
	// ErrBadInline indicates a malformed inline spec.
	ErrBadInline = errors.New("bad inline spec")
)

// Document is a decoded fragment document: the fragment tree plus the
// format options declared in its [format] table.
type Document struct {
	Format codize.Format
	Root   codize.Code
}

type file struct {
	Format   formatTable `toml:"format"`
	Fragment []fragment  `toml:"fragment"`
}

type formatTable struct {
	Indent          *int64 `toml:"indent"`
	TrailingNewline bool   `toml:"trailing-newline"`
}

type fragment struct {
	Kind      string     `toml:"kind"`
	Text      string     `toml:"text"`
	Start     string     `toml:"start"`
	End       string     `toml:"end"`
	Connect   bool       `toml:"connect"`
	Separator string     `toml:"separator"`
	Trailing  string     `toml:"trailing"`
	Inline    string     `toml:"inline"`
	Body      []fragment `toml:"body"`
}

// Decode parses a TOML fragment document. Top-level [[fragment]] entries
// form a concatenation.
func Decode(data []byte) (Document, error) {
	var cfg file
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Document{}, fmt.Errorf("failed to parse TOML: %w", err)
	}

	format := codize.DefaultFormat()
	if cfg.Format.Indent != nil {
		indent, err := safecast.Conv[int](*cfg.Format.Indent)
		if err != nil {
			return Document{}, fmt.Errorf("format.indent: %w", err)
		}
		format.Indent = indent
	}
	format.TrailingNewline = cfg.Format.TrailingNewline

	root := make(codize.Concat, 0, len(cfg.Fragment))
	for i, frag := range cfg.Fragment {
		code, err := buildCode(frag, fmt.Sprintf("fragment[%d]", i))
		if err != nil {
			return Document{}, err
		}
		root = append(root, code)
	}
	return Document{Format: format, Root: root}, nil
}

// Load reads and decodes a fragment document from disk.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func buildCode(frag fragment, at string) (codize.Code, error) {
	switch frag.Kind {
	case "line":
		return codize.Ln(frag.Text), nil

	case "block":
		body, err := buildBody(frag.Body, at)
		if err != nil {
			return nil, err
		}
		block := codize.NewBlock(frag.Start, body, frag.End)
		if frag.Connect {
			block.Connected()
		}
		if err := applyBlockInline(block, frag.Inline, at); err != nil {
			return nil, err
		}
		return block, nil

	case "list":
		body, err := buildBody(frag.Body, at)
		if err != nil {
			return nil, err
		}
		list := codize.NewList(frag.Separator, body)
		switch frag.Trailing {
		case "", "if-multiline":
		case "always":
			list.AlwaysTrail()
		case "never":
			list.NoTrail()
		default:
			return nil, fmt.Errorf("%s: %w: %q", at, ErrBadTrailing, frag.Trailing)
		}
		if err := applyListInline(list, frag.Inline, at); err != nil {
			return nil, err
		}
		return list, nil

	case "concat":
		body, err := buildBody(frag.Body, at)
		if err != nil {
			return nil, err
		}
		return codize.Concat(body), nil

	default:
		return nil, fmt.Errorf("%s: %w: %q", at, ErrUnknownKind, frag.Kind)
	}
}

func buildBody(frags []fragment, at string) ([]codize.Code, error) {
	body := make([]codize.Code, 0, len(frags))
	for i, frag := range frags {
		code, err := buildCode(frag, fmt.Sprintf("%s.body[%d]", at, i))
		if err != nil {
			return nil, err
		}
		body = append(body, code)
	}
	return body, nil
}

func applyBlockInline(block *codize.Block, spec, at string) error {
	switch {
	case spec == "" || spec == "auto":
	case spec == "always":
		block.Inlined()
	case spec == "never":
		block.InlineWhen(func(*codize.Block) bool { return false })
	default:
		limit, err := parseWidth(spec)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", at, ErrBadInline, spec)
		}
		block.InlineWhen(codize.BlockWithin(limit))
	}
	return nil
}

func applyListInline(list *codize.List, spec, at string) error {
	switch {
	case spec == "" || spec == "auto":
	case spec == "always":
		list.Inlined()
	case spec == "never":
		list.InlineWhen(func(*codize.List) bool { return false })
	default:
		limit, err := parseWidth(spec)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", at, ErrBadInline, spec)
		}
		list.InlineWhen(codize.ListWithin(limit))
	}
	return nil
}

// parseWidth parses a "width:N" inline spec.
func parseWidth(spec string) (int, error) {
	rest, ok := strings.CutPrefix(spec, "width:")
	if !ok {
		return 0, errors.New("missing width prefix")
	}
	limit, err := strconv.Atoi(rest)
	if err != nil {
		return 0, err
	}
	if limit < 0 {
		return 0, errors.New("negative width")
	}
	return limit, nil
}
