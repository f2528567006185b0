package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// expandPaths resolves the CLI arguments into a sorted list of document
// files. Plain files are taken as-is; directories are walked for *.czt.
func expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		dirFiles, err := listDocFiles(path)
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}
	// Deterministic order regardless of argument or walk order.
	sort.Strings(files)
	return files, nil
}

func listDocFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, DocExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// renderMany fans renderOne out across files. Result indexes are unique
// per goroutine, so the slice needs no locking.
func renderMany(ctx context.Context, files []string, cache *DiskCache, opts Options) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = renderOne(path, cache, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readDoc(path string) ([]byte, error) {
	return os.ReadFile(path)
}
