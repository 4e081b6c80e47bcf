package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/eykd/adoclint-go/internal/ruleset"
)

// NewRulesCmd creates the rules command, which lists every rule id.
func NewRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "rules [group...]",
		Short:        "List the rule ids messages can carry",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := ruleset.RuleIDs()
			groups := args
			if len(groups) == 0 {
				for g := range all {
					groups = append(groups, g)
				}
				sort.Strings(groups)
			}

			selected := make(map[string][]string, len(groups))
			for _, g := range groups {
				ids, ok := all[g]
				if !ok {
					return fmt.Errorf("unknown rule group %q", g)
				}
				selected[g] = ids
			}

			if jsonOutput {
				writeJSON(cmd.OutOrStdout(), selected)
				return nil
			}
			for _, g := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", g)
				for _, id := range selected[g] {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", id)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rule ids as JSON")

	return cmd
}
