package bytesleuth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagThreads       int
	flagNoColor       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the bytesleuth CLI.
var rootCmd = &cobra.Command{
	Use:           "bytesleuth",
	Short:         "Decode and hunt raw values in binary files",
	Long:          "Bytesleuth decodes a byte window under every plausible encoding and hunts files for the exact byte patterns of a target value.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the bytesleuth CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update bytesleuth to the latest release")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the bytesleuth version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("bytesleuth", version)
		},
	})
}
