package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swanysimon/mdlint/pkg/rules"
)

// ruleInfo is one rule in machine-readable rule listings.
type ruleInfo struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Fixable     bool     `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions, tags,
and whether they support auto-fixing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registered := rules.NewDefaultRegistry().Rules()

			infos := make([]ruleInfo, 0, len(registered))
			for _, rule := range registered {
				infos = append(infos, ruleInfo{
					ID:          rule.ID(),
					Description: rule.Description(),
					Tags:        rule.Tags(),
					Fixable:     rule.Fixable(),
				})
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encode rules: %w", err)
				}
				return nil
			}

			out := cmd.OutOrStdout()
			for _, info := range infos {
				fixable := " "
				if info.Fixable {
					fixable = "*"
				}
				fmt.Fprintf(out, "%s %s  %s", info.ID, fixable, info.Description)
				if len(info.Tags) > 0 {
					fmt.Fprintf(out, "  [%s]", strings.Join(info.Tags, ", "))
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "\n* supports --fix")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}
