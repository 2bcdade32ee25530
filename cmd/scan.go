/*
Copyright © 2025 licenseguard authors
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/licenseguard/licenseguard/internal/gitctx"
	"github.com/licenseguard/licenseguard/internal/ops"
	"github.com/licenseguard/licenseguard/pkg/config"
	"github.com/licenseguard/licenseguard/pkg/license"
	"github.com/licenseguard/licenseguard/pkg/logger"
	"github.com/licenseguard/licenseguard/pkg/manifest"
	"github.com/licenseguard/licenseguard/pkg/policy"
	"github.com/licenseguard/licenseguard/pkg/report"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a project's dependencies for license compliance",
	Long: `Scan reads the project's dependency manifests, resolves each
dependency's declared license, classifies it against the compliance policy,
and renders a report.

Violations are reported, not treated as tool failure: the exit code is zero
unless --fail-on is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	if err := ops.RegisterCommand("scan", ops.GroupScan, scanCmd, "Scan dependencies for license compliance"); err != nil {
		panic(fmt.Sprintf("failed to register scan command: %v", err))
	}

	scanCmd.Flags().StringP("output-format", "f", "", "Output format (text, json, markdown)")
	scanCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	scanCmd.Flags().String("policy", "", "Policy file path (default: built-in policy)")
	scanCmd.Flags().String("fail-on", "", "Exit non-zero on findings (never, flagged, unknown)")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	fi, err := os.Stat(target)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: project path %q is not a directory", errInvalidArgument, target)
	}

	cfg, err := config.Load(target)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	formatStr, _ := cmd.Flags().GetString("output-format")
	if formatStr == "" {
		formatStr = cfg.Scan.OutputFormat
	}
	format, err := report.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	failOn, _ := cmd.Flags().GetString("fail-on")
	if failOn == "" {
		failOn = cfg.Scan.FailOn
	}
	switch failOn {
	case "never", "flagged", "unknown":
	default:
		return fmt.Errorf("%w: unknown --fail-on value %q", errInvalidArgument, failOn)
	}

	// Load the policy before touching manifests so a broken policy file
	// fails fast.
	policyPath, _ := cmd.Flags().GetString("policy")
	if policyPath == "" {
		policyPath = cfg.Scan.PolicyPath
	}
	pol := policy.Default()
	if policyPath != "" {
		pol, err = policy.Load(policyPath)
		if err != nil {
			return fmt.Errorf("%w: %v", errConfig, err)
		}
		logger.Debug("Loaded policy", logger.String("path", policyPath))
	}

	deps, eco, err := manifest.Scan(target)
	if err != nil {
		return err
	}
	logger.Info("Manifest read",
		logger.String("ecosystem", string(eco)),
		logger.Int("dependencies", len(deps)))

	catalog, err := license.Bundled()
	if err != nil {
		return err
	}
	resolver := license.NewResolver(catalog)

	results := make([]report.Result, 0, len(deps))
	for _, dep := range deps {
		rec := resolver.Resolve(dep)
		results = append(results, report.Result{
			Dependency: dep,
			License:    rec,
			Status:     policy.Evaluate(rec, pol),
		})
	}

	issues := regoIssues(cmd, pol, results)

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	rep := report.New(filepath.Base(abs), eco, results, issues, gitctx.Collect(target))
	if manifests, err := manifest.ManifestFiles(target); err == nil {
		rep.Manifests = manifests
	}

	out := cmd.OutOrStdout()
	if outputPath, _ := cmd.Flags().GetString("output"); outputPath != "" {
		file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	if err := report.FormatterFor(format).Render(out, rep); err != nil {
		return err
	}

	logger.Info("Scan complete",
		logger.Int("ok", rep.Summary.OK),
		logger.Int("flagged", rep.Summary.Flagged),
		logger.Int("unknown", rep.Summary.Unknown))

	switch failOn {
	case "flagged":
		if rep.Summary.Flagged > 0 {
			return fmt.Errorf("%d flagged dependencies", rep.Summary.Flagged)
		}
	case "unknown":
		if rep.Summary.Flagged+rep.Summary.Unknown > 0 {
			return fmt.Errorf("%d flagged and %d unknown dependencies",
				rep.Summary.Flagged, rep.Summary.Unknown)
		}
	}
	return nil
}

// regoIssues runs the transpiled policy through the embedded engine. The
// denials duplicate the classifier's deny rules as advisory issues; engine
// failures degrade to a warning rather than failing the scan.
func regoIssues(cmd *cobra.Command, pol policy.Policy, results []report.Result) []report.Issue {
	engine := policy.NewRegoEngine(pol)
	denials, err := engine.Denials(cmd.Context(), map[string]interface{}{"results": results})
	if err != nil {
		logger.Warn("Policy engine evaluation failed", logger.Err(err))
		return nil
	}

	issues := make([]report.Issue, 0, len(denials))
	for _, msg := range denials {
		issues = append(issues, report.Issue{
			Type:     "policy",
			Severity: "critical",
			Message:  msg,
		})
	}
	return issues
}
