package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchCmd parses every plan stored under a prefix.
var batchCmd = &cobra.Command{
	Use:   "batch [prefix]",
	Short: "Count chairs in every plan stored under a prefix",
	Long: `Lists the objects stored under the prefix (default: the configured storage
prefix) and prints the report of each one, in key order, under a "== <key> =="
header. A plan that fails is logged and skipped; the command still fails once
every plan has been processed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc, err := rt.service(true)
		if err != nil {
			return err
		}

		prefix := svc.Prefix()
		if len(args) == 1 {
			prefix = args[0]
		}

		keys, err := svc.ListPlans(cmd.Context(), prefix)
		if err != nil {
			return err
		}
		rt.logger.Info("Parsing stored plans", zap.String("bucket", svc.Bucket()), zap.String("prefix", prefix), zap.Int("plans", len(keys)))

		out := cmd.OutOrStdout()
		failed := 0
		for _, key := range keys {
			report, err := svc.AnalyzeObject(cmd.Context(), key, rt.legend)
			if err != nil {
				failed++
				rt.logger.Error("Failed to parse plan", zap.String("key", key), zap.Error(err))
				continue
			}
			fmt.Fprintf(out, "== %s ==\n%s\n", key, report.Text)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d plans failed", failed, len(keys))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)
}
