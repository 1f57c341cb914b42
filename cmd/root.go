package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/lsx/internal/config"
	"github.com/oakwood-commons/lsx/internal/entry"
	"github.com/oakwood-commons/lsx/internal/filter"
	"github.com/oakwood-commons/lsx/internal/formatter"
	"github.com/oakwood-commons/lsx/internal/fsys"
	"github.com/oakwood-commons/lsx/pkg/logger"
	"github.com/oakwood-commons/lsx/pkg/settings"
)

var (
	showSize     bool
	showTypes    bool
	filterExpr   string
	strict       bool
	noColor      bool
	outputWidth  int
	configFile   string
	configOutput string
	configMode   bool
	debug        bool
)

var (
	listDirectory = fsys.List
	getLogger     = logger.Get
	terminalWidth = formatter.TerminalWidth
	isTerminal    = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && formatter.IsTerminal(f)
	}
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [directory]",
	Short: "List a directory as an aligned table",
	Long: `List the entries of a directory as a bordered table.

The name column is always shown; --size and --types add the human-readable
size and the guessed file type. Directories are highlighted. Columns are
dropped (type first, then size) when the table is wider than the terminal.`,
	Example: "\n  lsx\n  lsx ~/src --size\n  lsx -st /var/log\n  lsx --filter 'size > 1048576 && !dir' -s\n  lsx --filter 'ext in [\"go\", \"md\"]' -t\n",
	Args:    cobra.MaximumNArgs(1),
	Version: cliVersionString(),

	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configMode {
			return printConfig(cmd.OutOrStdout())
		}
		run, err := resolveRun(cmd, args)
		if err != nil {
			return err
		}
		lgr := logger.WithValues(getLogger(run.MinLogLevel),
			logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		ctx := settings.IntoContext(logger.WithLogger(cmd.Context(), lgr), run)
		return runListing(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// printConfig writes the merged configuration instead of a listing.
func printConfig(w io.Writer) error {
	cfg, err := loadMergedConfig(resolveConfigPath(configFile))
	if err != nil {
		return err
	}
	data, err := marshalConfig(cfg, configOutput)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// resolveRun merges flags over the config file over the embedded defaults.
func resolveRun(cmd *cobra.Command, args []string) (*settings.Run, error) {
	cfg, err := loadMergedConfig(resolveConfigPath(configFile))
	if err != nil {
		return nil, err
	}
	applyThemeFromConfig(cfg)

	run := settings.NewCliParams()
	// debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
	if debug {
		run.MinLogLevel = -1
	}
	if len(args) > 0 {
		run.Directory = args[0]
	}
	flags := cmd.Flags()
	run.ShowSize = pickBool(flags.Changed("size"), showSize, cfg.Defaults.Size)
	run.ShowType = pickBool(flags.Changed("types"), showTypes, cfg.Defaults.Types)
	run.Strict = pickBool(flags.Changed("strict"), strict, cfg.Defaults.Strict)
	run.NoColor = pickBool(flags.Changed("no-color"), noColor, cfg.Defaults.NoColor) || !isTerminal(cmd.OutOrStdout())
	run.Filter = filterExpr

	if outputWidth < 0 {
		return nil, fmt.Errorf("--width must be non-negative, got %d", outputWidth)
	}
	run.Width = outputWidth
	if run.Width == 0 {
		if w, ok := terminalWidth(); ok {
			run.Width = w
		}
	}
	return run, nil
}

func pickBool(flagSet, flagValue bool, fromConfig *bool) bool {
	if flagSet {
		return flagValue
	}
	return config.Bool(fromConfig)
}

// runListing lists the directory named by the run settings in ctx and
// writes the table to stdout in a single write.
func runListing(ctx context.Context, stdout, stderr io.Writer) error {
	run, ok := settings.FromContext(ctx)
	if !ok {
		return errors.New("internal error: no run settings in context")
	}
	lgr := logger.WithValues(logger.FromContext(ctx), logger.DirectoryKey, run.Directory)

	pred, err := filter.Compile(run.Filter)
	if err != nil {
		return fmt.Errorf("invalid --filter: %w", err)
	}
	if pred != nil {
		lgr.V(1).Info("compiled filter", "filter", pred.String())
	}

	listing, err := listDirectory(run.Directory)
	if err != nil {
		return err
	}
	lgr.V(1).Info("listed directory", "summary", listing.Summary())

	for _, failure := range listing.Failures {
		if run.Strict {
			return fmt.Errorf("reading %s: %w", run.Directory, failure)
		}
		fmt.Fprintf(stderr, "warning: skipping %s: %v\n", failure.Name, failure.Err)
		lgr.V(1).Info("skipping entry", logger.EntryKey, failure.Name, "error", failure.Err.Error())
	}

	cfg := entry.Config{ShowSize: run.ShowSize, ShowType: run.ShowType}
	if pred != nil {
		cfg.Filter = pred
	}
	records, err := entry.Collect(listing.Entries, cfg)
	if err != nil {
		return err
	}

	cols := entry.NewColumns(cfg)
	lgr.V(1).Info("rendering table", logger.ColumnsKey, cols.Keys(), "records", len(records), "width", run.Width)
	out, err := formatter.RenderTable(records, cols, formatter.TableOptions{
		NoColor:       run.NoColor,
		TerminalWidth: run.Width,
	})
	if err != nil {
		var violation *formatter.ContractViolationError
		if errors.As(err, &violation) {
			return fmt.Errorf("internal error: %w", err)
		}
		return err
	}

	_, err = io.WriteString(stdout, out)
	return err
}

// cliVersionString builds the string printed by --version.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s (commit %s, built %s)", v.BuildVersion, v.Commit, v.BuildTime)
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().BoolVarP(&showSize, "size", "s", false, "include the size column")
	rootCmd.Flags().BoolVarP(&showTypes, "types", "t", false, "include the type column")
	rootCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "CEL expression selecting entries; variables: name, path, size, dir, ext. Example: 'size > 1024 && !dir'")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail when an entry's metadata cannot be read instead of skipping it")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().IntVar(&outputWidth, "width", 0, "output width in columns (0 = detect terminal width)")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML or TOML config file")
	rootCmd.Flags().BoolVar(&configMode, "print-config", false, "print the merged config and exit")
	rootCmd.Flags().StringVar(&configOutput, "config-format", "yaml", "format for --print-config: yaml|toml")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "emit debug logs on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
