package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/licenseguard/licenseguard/internal/ops"
	"github.com/licenseguard/licenseguard/pkg/license"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the bundled license catalog",
	Long: `Catalog lists the package-to-license mappings bundled with the binary.
These mappings fill in licenses for dependencies whose manifests carry no
declaration of their own.`,
	RunE: runCatalog,
}

func init() {
	if err := ops.RegisterCommand("catalog", ops.GroupSupport, catalogCmd, "Show the bundled license catalog"); err != nil {
		panic(fmt.Sprintf("failed to register catalog command: %v", err))
	}

	catalogCmd.Flags().Bool("json", false, "Output as JSON")
	catalogCmd.Flags().String("ecosystem", "", "Only show entries for one ecosystem (go, node, python, rust, dotnet)")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	catalog, err := license.Bundled()
	if err != nil {
		return err
	}

	ecoFilter, _ := cmd.Flags().GetString("ecosystem")
	entries := catalog.Entries()
	if ecoFilter != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Ecosystem == ecoFilter {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ECOSYSTEM\tPACKAGE\tLICENSE\tCATEGORY")
	for _, e := range entries {
		eco := e.Ecosystem
		if eco == "" {
			eco = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", eco, e.Name, e.License, license.CategoryOf(e.License))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d entries\n", len(entries))
	return nil
}
