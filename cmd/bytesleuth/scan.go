package bytesleuth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bytesleuth/bytesleuth/internal/config"
	"github.com/bytesleuth/bytesleuth/internal/engine"
	"github.com/bytesleuth/bytesleuth/internal/report"
	"github.com/bytesleuth/bytesleuth/internal/tui"
	"github.com/bytesleuth/bytesleuth/internal/types"
	"github.com/bytesleuth/bytesleuth/internal/update"
)

var (
	flagType     string
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagTable    bool
	flagTUI      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan PATH VALUE",
		Short: "Hunt files for the byte patterns of a value",
		Long:  "Scan searches PATH (a file or a directory tree) for every unaligned occurrence of VALUE's byte patterns, little-endian occurrences first, then big-endian.",
		Args:  cobra.ExactArgs(2),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagType, "type", "float", "value type: float|int")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output matches as a bordered table")
	cmd.Flags().BoolVar(&flagTUI, "tui", false, "browse matches interactively")
}

func runScan(_ *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(args[0])

	class, err := types.ParseValueClass(flagType)
	if err != nil {
		return err
	}
	target, err := types.ParseTarget(args[1], class)
	if err != nil {
		return err
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	cfg := engine.Config{
		Root:         abs,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:      pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)

	// Friendly banner before scanning
	if !flagJSON {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'bytesleuth --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if err := selfUpdate(); err == nil {
				_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Scanning %s for %s (%s)...\n", abs, target.Raw, class)
	}

	// Optional progress meter: simple textual bar on stderr
	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 1 && !flagJSON {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}
	res, err := engine.ScanWithStats(cfg, target)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if total > 1 && !flagJSON {
		_, _ = fmt.Fprintln(os.Stderr)
	}

	files := res.Files
	if files == nil {
		files = []types.FileMatches{}
	} // no `null` in JSON

	opts := report.PrintOptions{
		NoColor:      noColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		BytesScanned: res.BytesScanned,
	}

	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case flagTUI:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			report.PrintMatches(os.Stdout, files, opts)
			return nil
		}
		return tui.Run(files, func(p string) ([]byte, error) {
			if !filepath.IsAbs(p) {
				p = filepath.Join(abs, p)
			}
			return os.ReadFile(p)
		})
	case pickBool(flagTable, lcfg.Table, gcfg.Table):
		return report.PrintMatchTable(os.Stdout, files, opts)
	default:
		report.PrintMatches(os.Stdout, files, opts)
		return nil
	}
}
