package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pistonite/codize/internal/driver"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <path> [path...]",
	Short: "Render fragment documents",
	Long:  `Render *.czt fragment documents into text files. A directory argument is walked for documents.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Bool("stdout", false, "print rendered output instead of writing files")
	renderCmd.Flags().String("out", "", "directory for rendered files (default: next to each document)")
	renderCmd.Flags().Int("indent", 0, "override document indentation (spaces per level)")
	renderCmd.Flags().Bool("tabs", false, "override document indentation with tabs")
	renderCmd.Flags().Int("jobs", 0, "max documents rendered in parallel (default: GOMAXPROCS)")
	renderCmd.Flags().Bool("no-cache", false, "skip the render cache")
}

func runRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if toStdout && outDir != "" {
		return fmt.Errorf("render: --stdout cannot be used with --out")
	}

	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	results, err := driver.RenderPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", r.Err)
			failed++
			continue
		}
		if toStdout {
			fmt.Fprintln(cmd.OutOrStdout(), r.Output)
			continue
		}
		dest := outputPath(r.Path, outDir)
		if outDir != "" {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(dest, []byte(r.Output), 0o644); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", dest, err)
			failed++
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %s -> %s\n", r.Path, dest)
		}
	}
	if failed > 0 {
		return fmt.Errorf("render: %d document(s) failed", failed)
	}
	return nil
}

// renderOptions builds driver options shared by render and check.
func renderOptions(cmd *cobra.Command) (driver.Options, error) {
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return driver.Options{}, err
	}
	tabs, err := cmd.Flags().GetBool("tabs")
	if err != nil {
		return driver.Options{}, err
	}
	if tabs && indent > 0 {
		return driver.Options{}, fmt.Errorf("--tabs cannot be used with --indent")
	}
	if tabs {
		indent = -1
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return driver.Options{}, err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return driver.Options{}, err
	}
	return driver.Options{Jobs: jobs, NoCache: noCache, Indent: indent}, nil
}

// outputPath maps a document path to its rendered file: the .czt
// extension is replaced by .out, optionally redirected into outDir.
func outputPath(docPath, outDir string) string {
	base := strings.TrimSuffix(docPath, driver.DocExt) + ".out"
	if outDir == "" {
		return base
	}
	return filepath.Join(outDir, filepath.Base(base))
}
