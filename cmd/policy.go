package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/licenseguard/licenseguard/internal/ops"
	"github.com/licenseguard/licenseguard/pkg/config"
	"github.com/licenseguard/licenseguard/pkg/policy"
)

// policyCmd represents the policy command
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect and validate compliance policies",
}

var policyShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the effective policy",
	Long: `Show prints the policy a scan would use: the given file, the one
configured in .licenseguard.yaml, or the built-in default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPolicyShow,
}

var policyValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a policy file against the policy schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyValidate,
}

func init() {
	if err := ops.RegisterCommand("policy", ops.GroupScan, policyCmd, "Inspect and validate compliance policies"); err != nil {
		panic(fmt.Sprintf("failed to register policy command: %v", err))
	}

	policyCmd.AddCommand(policyShowCmd)
	policyCmd.AddCommand(policyValidateCmd)

	policyShowCmd.Flags().Bool("json", false, "Output the policy as JSON")
}

func runPolicyShow(cmd *cobra.Command, args []string) error {
	var pol policy.Policy
	var source string

	switch {
	case len(args) > 0:
		loaded, err := policy.Load(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", errConfig, err)
		}
		pol, source = loaded, args[0]
	default:
		cfg, err := config.Load(".")
		if err != nil {
			return fmt.Errorf("%w: %v", errConfig, err)
		}
		if cfg.Scan.PolicyPath != "" {
			loaded, err := policy.Load(cfg.Scan.PolicyPath)
			if err != nil {
				return fmt.Errorf("%w: %v", errConfig, err)
			}
			pol, source = loaded, cfg.Scan.PolicyPath
		} else {
			pol, source = policy.Default(), "built-in"
		}
	}

	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		data, err := json.MarshalIndent(pol, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "# policy source: %s\n", source)
	data, err := yaml.Marshal(pol)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func runPolicyValidate(cmd *cobra.Command, args []string) error {
	if _, err := policy.Load(args[0]); err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid policy\n", args[0])
	return nil
}
