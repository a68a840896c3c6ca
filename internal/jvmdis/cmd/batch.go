package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jvmdis/internal/codefile"
	"jvmdis/internal/config"
	"jvmdis/internal/logging"
)

// BatchSummary is one line of `jvmdis batch` output.
type BatchSummary struct {
	File         string `json:"file"`
	Instructions int    `json:"instructions"`
	Findings     int    `json:"findings"`
	Error        string `json:"error,omitempty"`
}

func newBatchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "batch file...",
		Short: "Decode many code files and summarize each",
		Long: `Decode every file in non-interactive mode and print one summary line per
file, in argument order. Files are decoded concurrently.`,
		Example: `
# Summarize a directory of dumped methods
jvmdis batch methods/*.code

# Lint each file with four workers
jvmdis batch -w 4 --lint methods/*.code
  `,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}
	c.Flags().IntP("workers", "w", 0, "Concurrent decodes (default: one per CPU)")
	c.Flags().Uint32P("base", "b", 0, "Method-relative address of the first code byte")
	c.Flags().BoolP("lint", "l", false, "Count detector findings")
	c.Flags().BoolP("json", "j", false, "Output JSON")
	c.Flags().BoolP("quiet", "q", false, "Only print failures")
	return c
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("base") {
		cfg.Base, _ = flags.GetUint32("base")
	}
	if flags.Changed("lint") {
		cfg.Lint, _ = flags.GetBool("lint")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	lg := logging.NewLogger(cfg.LogLevel)
	defer lg.Close()
	lg.Debug("batch", "files", len(args), "workers", workers)

	summaries := make([]BatchSummary, len(args))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range args {
		g.Go(func() error {
			summaries[i] = decodeFile(path, cfg)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, s := range summaries {
		if s.Error != "" {
			failed++
			lg.Warn("decode failed", "file", s.File, "err", s.Error)
		}
	}

	out := cmd.OutOrStdout()
	asJSON, _ := flags.GetBool("json")
	quiet, _ := flags.GetBool("quiet")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summaries); err != nil {
			return err
		}
	} else {
		for _, s := range summaries {
			switch {
			case s.Error != "":
				fmt.Fprintf(out, "%s: error: %s\n", s.File, s.Error)
			case !quiet:
				fmt.Fprintf(out, "%s: %d instructions, %d findings\n", s.File, s.Instructions, s.Findings)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// decodeFile never fails; problems land in the summary.
func decodeFile(path string, cfg config.Config) BatchSummary {
	s := BatchSummary{File: path}
	data, err := os.ReadFile(path)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	code, hex := codefile.Parse(data)
	slog.Debug("batch decode", "file", path, "bytes", len(code), "hex", hex)

	r := runDecode(input{name: path, code: code, base: cfg.Base}, cfg.Lint, nil)
	s.Instructions = len(r.instrs)
	s.Findings = len(r.findings)
	if r.err != nil {
		s.Error = r.err.Error()
	}
	return s
}
