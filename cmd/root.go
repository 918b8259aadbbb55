package cmd

import (
	"fmt"
	"os"
	"strings"

	"floor-plan/core/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "floor-plan",
	Short: "Floor plan chair counter",
	Long: `Floor Plan reads ASCII floor plans, splits them into rooms along the wall
characters and counts the chairs of every type found in each named room.
Plans can be read from local files or from an S3 compatible bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Persistent flags shared by every command. Empty values keep the configured setting.
var (
	flagChairChars string
	flagSeparators string
	flagLogging    string
)

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config keeps ISO8601 timestamps for humans.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&flagChairChars, "chair-chars", "", "comma-separated chair characters (default from PLAN_CHAIR_TYPES, C,S,P,W)")
	flags.StringVar(&flagSeparators, "separators", "", `comma-separated wall characters (default from PLAN_SEPARATORS, +,-,|,/,\)`)
	flags.StringVar(&flagLogging, "logging", "", "log level: "+strings.Join(logger.Levels, ", ")+" (default from LOG_LEVEL)")

	// Accept --chair_chars as well as --chair-chars.
	RootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}
