package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pistonite/codize/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show codize build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		switch strings.ToLower(versionFormat) {
		case "pretty":
			fmt.Fprintf(cmd.OutOrStdout(), "codize %s\n", version.Version)
			if versionShowFull {
				if version.GitCommit != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
				}
				if version.BuildDate != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
				}
			}
			return nil
		case "json":
			payload := versionPayload{
				Tool:    "codize",
				Version: stripANSI(version.Version),
			}
			if versionShowFull {
				payload.GitCommit = version.GitCommit
				payload.BuildDate = version.BuildDate
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("version: unknown format %q", versionFormat)
		}
	},
}

// stripANSI removes color escape sequences from the decorated version
// string so machine output stays plain.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
