package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Pistonite/codize/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Verify rendered files are up to date",
	Long:  `Re-render fragment documents and compare against the files on disk. Exits non-zero when any output is missing or stale.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("out", "", "directory holding the rendered files")
	checkCmd.Flags().Int("indent", 0, "override document indentation (spaces per level)")
	checkCmd.Flags().Bool("tabs", false, "override document indentation with tabs")
	checkCmd.Flags().Int("jobs", 0, "max documents rendered in parallel (default: GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "skip the render cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	okMark := color.New(color.FgGreen)
	badMark := color.New(color.FgRed, color.Bold)
	if !colorEnabled(cmd, os.Stdout) {
		okMark.DisableColor()
		badMark.DisableColor()
	}

	results, err := driver.RenderPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var stale int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", r.Err)
			stale++
			continue
		}
		dest := outputPath(r.Path, outDir)
		status, fresh := compareOutput(dest, r.Output)
		if fresh {
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okMark.Sprint("ok"), r.Path)
			}
			continue
		}
		stale++
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", badMark.Sprint("stale"), r.Path, status)
	}
	if stale > 0 {
		return fmt.Errorf("check: %d document(s) out of date", stale)
	}
	return nil
}

func compareOutput(dest, want string) (string, bool) {
	data, err := os.ReadFile(dest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "missing " + dest, false
		}
		return err.Error(), false
	}
	if string(data) != want {
		return dest + " differs", false
	}
	return "", true
}
