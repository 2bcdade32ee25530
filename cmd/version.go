package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/licenseguard/licenseguard/internal/ops"
	"github.com/licenseguard/licenseguard/pkg/buildinfo"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	if err := ops.RegisterCommand("version", ops.GroupSupport, versionCmd, "Show version information"); err != nil {
		panic(fmt.Sprintf("failed to register version command: %v", err))
	}

	versionCmd.Flags().Bool("json", false, "Output as JSON")
	versionCmd.Flags().Bool("extended", false, "Include build environment details")
}

type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

func runVersion(cmd *cobra.Command, _ []string) error {
	extended, _ := cmd.Flags().GetBool("extended")
	info := versionInfo{Version: buildinfo.Version()}
	if extended {
		info.GoVersion = runtime.Version()
		info.Platform = runtime.GOOS + "/" + runtime.GOARCH
	}

	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "licenseguard %s\n", info.Version)
	if extended {
		fmt.Fprintf(out, "go: %s\n", info.GoVersion)
		fmt.Fprintf(out, "platform: %s\n", info.Platform)
	}
	return nil
}
