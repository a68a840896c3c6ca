package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"jvmdis/internal/codefile"
	"jvmdis/internal/config"
	jlog "jvmdis/internal/jvmdis/log"
	"jvmdis/internal/logging"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jvmdis [file]",
		Short: "Decode JVM method bytecode",
		Long: `jvmdis decodes the code array of a JVM method into instruction records.
Input is a file holding raw bytes or hex text, --hex on the command line, or
standard input. Addresses are method-relative; --base sets the address of the
first byte when the input does not start at the beginning of the method.`,
		Example: `
# Decode a hex string
jvmdis --hex "2a b7 00 01 b1"

# Decode a raw code array and show the encoded bytes
jvmdis --raw Foo.code

# Decode part of a larger file as JSON, with lint findings
jvmdis --offset 120 --length 48 --json --lint Foo.class
  `,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().String("config", "", "Path to jvmdis.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "Write CPU profile to file")

	rootCmd.Flags().String("hex", "", "Decode the given hex bytes instead of a file")
	rootCmd.Flags().Uint32P("base", "b", 0, "Method-relative address of the first code byte")
	rootCmd.Flags().Int("offset", 0, "Start of the code region within the file")
	rootCmd.Flags().Int("length", -1, "Length of the code region (default: to end of file)")
	rootCmd.Flags().BoolP("json", "j", false, "Output JSON")
	rootCmd.Flags().Bool("cbor", false, "Output canonical CBOR")
	rootCmd.Flags().Bool("dump", false, "Dump the decoded records")
	rootCmd.Flags().BoolP("lint", "l", false, "Report suspicious operands and branch targets")
	rootCmd.Flags().BoolP("raw", "r", false, "Show encoded bytes next to each instruction")
	rootCmd.Flags().BoolP("no-tui", "n", false, "Print the listing without the TUI")
	rootCmd.Flags().Bool("no-color", false, "Disable colors")

	rootCmd.AddCommand(newOpcodesCmd(), newBatchCmd(), newSchemaCmd())
	return rootCmd
}

// loadConfig resolves the configuration file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cwd, werr := os.Getwd()
		if werr != nil {
			return config.Default(), werr
		}
		cfg, err = config.FindAndLoad(cwd)
	}
	if err != nil {
		return cfg, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Base, _ = flags.GetUint32("base")
	}
	if flags.Changed("lint") {
		cfg.Lint, _ = flags.GetBool("lint")
	}
	if flags.Changed("raw") {
		cfg.RawBytes, _ = flags.GetBool("raw")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}
	for flag, format := range map[string]string{
		"json": config.FormatJSON,
		"cbor": config.FormatCBOR,
		"dump": config.FormatDump,
	} {
		if on, _ := flags.GetBool(flag); on {
			cfg.Format = format
		}
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cpuprofile, _ := cmd.Flags().GetString("cpuprofile")
	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	jlog.Setup("", cfg.LogLevel == "debug")
	lg := logging.NewLogger(cfg.LogLevel)
	defer lg.Close()
	if cfg.Path != "" {
		lg.Debug("loaded config", "path", cfg.Path)
	}

	in, err := readInput(cmd, args, cfg.Base)
	if err != nil {
		return err
	}
	slog.Debug("decoding", "input", in.name, "bytes", len(in.code), "base", in.base)

	noTUI, _ := cmd.Flags().GetBool("no-tui")
	tty := isTerminal(cmd.OutOrStdout())
	if !tty || cfg.Format != config.FormatText {
		noTUI = true
	}

	if !noTUI {
		program := tea.NewProgram(
			newModel(in, cfg, nil),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}

	var traceLg = lg.Logger
	if !logging.IsDebug() && cfg.LogLevel != "debug" {
		traceLg = nil
	}
	r := runDecode(in, cfg.Lint, traceLg)
	if err := writeResult(cmd.OutOrStdout(), r, cfg, cfg.Color && tty); err != nil {
		return err
	}
	if r.err != nil {
		lg.Error("decode failed", "input", in.name, "err", r.err)
		return fmt.Errorf("%s: %w", in.name, r.err)
	}
	return nil
}

// readInput picks the code region from --hex, the file argument or stdin.
func readInput(cmd *cobra.Command, args []string, base uint32) (input, error) {
	offset, _ := cmd.Flags().GetInt("offset")
	length, _ := cmd.Flags().GetInt("length")

	if hexArg, _ := cmd.Flags().GetString("hex"); hexArg != "" {
		if len(args) > 0 {
			return input{}, fmt.Errorf("--hex and a file argument are mutually exclusive")
		}
		code, err := codefile.ParseHex(hexArg)
		if err != nil {
			return input{}, err
		}
		return input{name: "hex", code: code, base: base}, nil
	}

	if len(args) == 0 {
		stdin := cmd.InOrStdin()
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(f.Fd()) {
			return input{}, fmt.Errorf("usage: jvmdis <file> or jvmdis --hex <bytes>")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		code, _ := codefile.Parse(data)
		im := &codefile.Image{Path: "stdin", Code: code}
		region, err := im.Slice(offset, length)
		if err != nil {
			return input{}, err
		}
		return input{name: "stdin", code: region, base: base}, nil
	}

	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return input{}, fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return input{}, fmt.Errorf("file not found: %s", args[0])
		}
		return input{}, fmt.Errorf("cannot access file: %w", err)
	}

	im, err := codefile.Open(absPath)
	if err != nil {
		return input{}, err
	}
	defer im.Close()
	region, err := im.Slice(offset, length)
	if err != nil {
		return input{}, err
	}
	// copy out of the mapping before it goes away
	code := append([]byte(nil), region...)
	return input{name: args[0], code: code, base: base}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// Execute runs the command tree, through fang when attached to a terminal.
func Execute() {
	rootCmd := NewRootCmd()

	// fang renders help and errors as styled output; keep it off when
	// writing plain listings or piping.
	noTUI := false
	for _, arg := range os.Args[1:] {
		if arg == "--no-tui" || arg == "-n" {
			noTUI = true
			break
		}
	}
	if !noTUI && !term.IsTerminal(os.Stdout.Fd()) {
		noTUI = true
	}

	if noTUI {
		if err := rootCmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
