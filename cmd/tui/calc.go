package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var calcJSON bool

var calcCmd = &cobra.Command{
	Use:   "calc <neighborhood>",
	Short: "Print the safety improvement for one neighborhood",
	Example: `  safetycalc calc "Coney Island"
  safetycalc calc Coney Island --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distances, err := loadTable()
		if err != nil {
			return err
		}

		item := strings.Join(args, " ")
		result := cfg.RiskModel().Calculate(distances, item)
		group, known := distances.GroupOf(item)

		log.Debug("Calculated from command line",
			zap.String("item", item),
			zap.Bool("known", known),
			zap.Float64("percent_reduction", result.PercentReduction))

		out := cmd.OutOrStdout()
		if calcJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		if !known {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not in the distance table\n", item)
			fmt.Fprintf(out, "%s: %s\n", item, result.Display())
			return nil
		}

		fmt.Fprintf(out, "%s > %s (%.2f mi): %s\n", group, item, result.DistanceMiles, result.Display())
		return nil
	},
}

func init() {
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "print the full result as JSON")
	rootCmd.AddCommand(calcCmd)
}
