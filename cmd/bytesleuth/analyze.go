package bytesleuth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bytesleuth/bytesleuth/internal/config"
	"github.com/bytesleuth/bytesleuth/internal/engine"
	"github.com/bytesleuth/bytesleuth/internal/report"
)

var flagAnalyzeBytes int

func init() {
	cmd := &cobra.Command{
		Use:   "analyze FILE OFFSET",
		Short: "Decode the bytes at an offset under every plausible encoding",
		Long:  "Analyze reads FILE, takes the window of bytes starting at OFFSET (decimal or 0x-hex) and prints its value under every encoding that fits the window width.",
		Args:  cobra.ExactArgs(2),
		RunE:  runAnalyze,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagAnalyzeBytes, "bytes", 0, "window length in bytes (default 4)")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	path := args[0]
	offset, err := strconv.ParseInt(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: must be decimal or 0x-hex", args[1])
	}

	abs, _ := filepath.Abs(path)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(filepath.Dir(abs)); err == nil {
		lcfg = c
	}

	length := pickInt(flagAnalyzeBytes, lcfg.Length, gcfg.Length)
	if length == 0 {
		length = 4
	}

	rep, err := engine.AnalyzeFile(path, offset, length)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	report.PrintInterpretations(os.Stdout, rep, report.PrintOptions{NoColor: noColor})
	return nil
}
