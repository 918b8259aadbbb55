package cmd

import (
	"fmt"

	"floor-plan/feature/plans/models"

	"github.com/spf13/cobra"
)

var parseRemote bool

// parseCmd parses one plan and prints the chair report.
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Count chairs per room in a floor plan",
	Long: `Parses a floor plan and prints the chair counts, first for the whole
plan and then for every named room in alphabetical order.
With --remote the argument is an object key in the configured bucket.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc, err := rt.service(parseRemote)
		if err != nil {
			return err
		}

		var report *models.Report
		if parseRemote {
			report, err = svc.AnalyzeObject(cmd.Context(), args[0], rt.legend)
		} else {
			report, err = svc.AnalyzeFile(args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.Text)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseRemote, "remote", false, "read the plan from object storage instead of the local disk")
	RootCmd.AddCommand(parseCmd)
}
