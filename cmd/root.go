/*
Copyright © 2025 licenseguard authors
*/
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/licenseguard/licenseguard/internal/ops"
	"github.com/licenseguard/licenseguard/pkg/buildinfo"
	"github.com/licenseguard/licenseguard/pkg/exitcode"
	"github.com/licenseguard/licenseguard/pkg/logger"
	"github.com/licenseguard/licenseguard/pkg/manifest"
	"github.com/licenseguard/licenseguard/pkg/report"
)

// newRootCommand creates a fresh root command instance.
// The factory pattern lets tests build isolated command trees without
// shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licenseguard",
		Short: "Dependency license compliance scanner",
		Long: `Licenseguard scans a project's dependency manifests, resolves each
dependency's declared license, and flags potential compliance issues against
a configurable policy.

Examples:
   licenseguard scan                  # Scan the current directory
   licenseguard scan ./api --output_format json
   licenseguard policy validate compliance.yaml
   licenseguard catalog               # Show the bundled license catalog`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
		// Runtime failures (missing manifest, bad policy) are reported through
		// the logger with a mapped exit code; re-printing usage would bury them.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// The README documents the underscore spellings (--output_format,
	// --log_level); normalize them onto the dashed flag names.
	cmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	cmd.PersistentFlags().String("log-level", "info", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json-logs", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.Version = buildinfo.Version()
	cmd.SetVersionTemplate("licenseguard {{.Version}}\n")

	// Grouped help by command group (Scan → Support)
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		reg := ops.GetRegistry()
		cmd.Println(cmd.Long)
		cmd.Println()
		cmd.Println("Scan Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupScan) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Support Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupSupport) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Flags:")
		cmd.Print(cmd.UsageString())
	})

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(scanCmd)
	cmd.AddCommand(policyCmd)
	cmd.AddCommand(catalogCmd)
	cmd.AddCommand(versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func init() {
	registerSubcommands(rootCmd)
}

// Execute runs the root command and exits with the code matching the error
// kind. A scan that merely reports violations is a success.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitCodeFor(err))
	}
}

// errInvalidArgument marks argument validation failures, e.g. a project path
// that does not exist.
var errInvalidArgument = errors.New("invalid argument")

// errConfig marks configuration and policy loading failures.
var errConfig = errors.New("configuration error")

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, manifest.ErrManifestNotFound):
		return exitcode.ManifestNotFound
	case manifest.IsParseError(err):
		return exitcode.ManifestParseFail
	case errors.Is(err, report.ErrUnsupportedFormat):
		return exitcode.UnsupportedFormat
	case errors.Is(err, errInvalidArgument):
		return exitcode.InvalidArgument
	case errors.Is(err, errConfig):
		return exitcode.ConfigError
	default:
		return exitcode.GeneralError
	}
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	noColor, _ := cmd.Flags().GetBool("no-color")

	level, err := logger.ParseLevel(logLevelStr)
	if err != nil {
		// Fall back to info rather than aborting; verbosity never affects
		// scan results.
		level = logger.InfoLevel
	}

	logger.Initialize(logger.Config{
		Level:     level,
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "licenseguard",
	})
	if err != nil {
		logger.Warn("Unknown log level, using info", logger.String("requested", logLevelStr))
	}
}
