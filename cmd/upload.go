package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// uploadCmd stores a local plan in the bucket.
var uploadCmd = &cobra.Command{
	Use:   "upload <file> [key]",
	Short: "Upload a floor plan to object storage",
	Long: `Normalises a local floor plan and stores it in the configured bucket.
The key defaults to the storage prefix followed by the file name.`,
	Args: cobra.RangeArgs(1, 2),
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

		key := svc.Prefix() + filepath.Base(args[0])
		if len(args) == 2 {
			key = args[1]
		}

		info, err := svc.UploadFile(cmd.Context(), args[0], key)
		if err != nil {
			return err
		}
		rt.logger.Debug("Upload finished", zap.String("etag", info.ETag), zap.Int64("size", info.Size))

		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\n", svc.Bucket(), key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
