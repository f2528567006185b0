// Package driver renders fragment documents in bulk for the CLI: path
// expansion, a disk cache of rendered output, and parallel fan-out
// across independent documents. A single document is always rendered
// synchronously; parallelism never reaches inside a render.
package driver

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/Pistonite/codize/internal/document"
)

// DocExt is the extension of fragment documents picked up from
// directories.
const DocExt = ".czt"

// Options controls a RenderPaths run.
type Options struct {
	// Jobs caps parallelism across documents. Zero means GOMAXPROCS.
	Jobs int
	// NoCache skips the disk cache entirely.
	NoCache bool
	// Indent overrides the documents' declared indentation when
	// non-zero (negative selects tabs, same as the library).
	Indent int
}

// Result is the outcome of rendering one document.
type Result struct {
	Path   string
	Output string
	Cached bool
	Err    error
}

// RenderPaths renders every fragment document named by paths. A path
// naming a directory is walked for *.czt files. Results come back in
// deterministic path order; per-document failures are reported in the
// Result, not as the returned error.
func RenderPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	var cache *DiskCache
	if !opts.NoCache {
		// A broken cache dir degrades to plain rendering.
		cache, _ = OpenDiskCache("codize")
	}

	return renderMany(ctx, files, cache, opts)
}

// renderOne renders a single document, consulting the cache first.
func renderOne(path string, cache *DiskCache, opts Options) Result {
	data, err := readDoc(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	key := digest(data, opts)
	var payload Payload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		return Result{Path: path, Output: payload.Output, Cached: true}
	}

	doc, err := document.Decode(data)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
	}
	format := doc.Format
	if opts.Indent != 0 {
		format.Indent = opts.Indent
	}

	output := format.Render(doc.Root)

	_ = cache.Put(key, &Payload{
		Schema: cacheSchemaVersion,
		Output: output,
		Lines:  strings.Count(output, "\n") + 1,
	})
	return Result{Path: path, Output: output}
}

// digest keys the cache on document bytes plus every option that can
// change the rendered text.
func digest(data []byte, opts Options) Digest {
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "|indent=%d|schema=%d", opts.Indent, cacheSchemaVersion)
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}
