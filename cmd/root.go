package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"krearsip/pkg/log"

	"go.uber.org/zap"
)

var logs *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "krearsip",
	Short: "Krearsip command line client",
	Long: `Krearsip registers creative works and anchors their proof of authorship
on Ethereum. This client signs in with a wallet, submits and lists works,
runs the admin review queues and reconciles on-chain transactions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zapcore.InfoLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
			level = zapcore.ErrorLevel
		}
		logs = log.NewZapLogger("krearsip", level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable info level logging")
}

// printJSON renders command results on stdout; logs go to stderr so output
// stays pipeable.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
