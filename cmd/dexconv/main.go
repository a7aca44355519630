// Command dexconv converts a species dataset (CSV or workbook) into a
// JavaScript module assigning one keyed object literal.
//
// Usage:
//
//	dexconv [input] [output] [--standalone] [--strict] [--export Name]
//	dexconv serve
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/dexconv/internal/config"
	"github.com/JonMunkholm/dexconv/internal/core"
	"github.com/JonMunkholm/dexconv/internal/core/tables"
	"github.com/JonMunkholm/dexconv/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	// .env values fill in whatever the environment leaves unset
	cfg, err := config.LoadFiles()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := executeArgs(ctx, newRootCmd(cfg), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, userError(err))
		stop()
		os.Exit(1)
	}
}

// runOptions holds flag values layered over the loaded config.
type runOptions struct {
	standalone bool
	strict     bool
	exportName string
	aliasFile  string
	logLevel   string
	logFormat  string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := runOptions{
		standalone: cfg.Convert.Standalone,
		strict:     strings.EqualFold(cfg.Convert.Duplicates, string(core.DuplicateReject)),
		exportName: cfg.Convert.ExportName,
		aliasFile:  cfg.Convert.AliasFile,
		logLevel:   cfg.Logging.Level,
		logFormat:  cfg.Logging.Format,
	}

	cmd := &cobra.Command{
		Use:   "dexconv [input] [output]",
		Short: "Convert a species dataset into a JavaScript data module",
		Long: `Convert a species dataset into a JavaScript data module.

Input defaults to ` + cfg.Convert.Input + ` and output to ` + cfg.Convert.Output + `.
Files ending in .xlsx are read as workbooks (first sheet); anything else as CSV.

By default records are patches: they carry "inherit": true and omit the
species name. --standalone switches to the extended schema and complete records.

Example: dexconv pokedex.csv pokedex.js --standalone --export BattlePokedex`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupWriter(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := cfg.Convert.Input, cfg.Convert.Output
			if len(args) > 0 {
				in = args[0]
			}
			if len(args) > 1 {
				out = args[1]
			}
			return runConvert(cmd, cfg, opts, in, out)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.standalone, "standalone", opts.standalone, "Emit complete records using the extended schema")
	flags.BoolVar(&opts.strict, "strict", opts.strict, "Fail on duplicate species instead of overwriting")
	flags.StringVar(&opts.exportName, "export", opts.exportName, "Export name assigned in the output module")
	flags.StringVar(&opts.aliasFile, "alias-file", opts.aliasFile, "YAML file of extra aliases (alias: Canonical Name)")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", opts.logFormat, "Log format: text or json")

	cmd.AddCommand(newServeCmd(cfg, &opts))
	return cmd
}

// executeArgs runs cmd with args after dropping flags no command defines.
func executeArgs(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(stripUnknownFlags(cmd, args))
	return cmd.ExecuteContext(ctx)
}

// stripUnknownFlags removes unrecognized flags from args. Each one is
// dropped alone: the argument after it stays positional, which pflag's
// unknown-flag whitelist does not guarantee. Values of known flags are kept
// with their flag, and everything after "--" passes through.
func stripUnknownFlags(root *cobra.Command, args []string) []string {
	cmd := root
	if sub, _, err := root.Find(args); err == nil && sub != nil {
		cmd = sub
	}
	lookup := func(name string, short bool) *pflag.Flag {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags(), root.PersistentFlags()} {
			if short {
				if f := fs.ShorthandLookup(name); f != nil {
					return f
				}
			} else if f := fs.Lookup(name); f != nil {
				return f
			}
		}
		return nil
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			if name == "help" {
				out = append(out, arg)
				continue
			}
			f := lookup(name, false)
			if f == nil {
				continue
			}
			out = append(out, arg)
			if !hasValue && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case len(arg) > 1 && arg[0] == '-':
			short := arg[1:2]
			if short == "h" {
				out = append(out, arg)
				continue
			}
			f := lookup(short, true)
			if f == nil {
				continue
			}
			out = append(out, arg)
			if len(arg) == 2 && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			out = append(out, arg)
		}
	}
	return out
}

func runConvert(cmd *cobra.Command, cfg *config.Config, opts runOptions, in, out string) error {
	aliases, err := loadAliases(opts.aliasFile)
	if err != nil {
		return err
	}

	conv, err := tables.NewConverter(opts.standalone, aliases, convertOptions(cfg, opts))
	if err != nil {
		return err
	}

	res, err := conv.ConvertFile(cmd.Context(), in, out)
	if err != nil {
		return err
	}

	slog.Info("wrote output",
		"input", in,
		"output", out,
		"entries", res.Stats.Entries,
		"run_id", res.RunID,
	)
	return nil
}

// convertOptions builds core options from config and flags.
func convertOptions(cfg *config.Config, opts runOptions) core.Options {
	policy := core.DuplicateOverwrite
	if opts.strict {
		policy = core.DuplicateReject
	}
	return core.Options{
		Duplicates:  policy,
		ExportName:  opts.exportName,
		MaxFileSize: cfg.Convert.MaxFileSize,
	}
}

// loadAliases builds the alias table, merging the optional alias file over
// the built-in entries.
func loadAliases(path string) (*core.AliasTable, error) {
	if path == "" {
		return tables.NewAliasTable(nil), nil
	}
	extra, err := core.LoadAliasFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("alias file loaded", "path", path, "entries", len(extra))
	return tables.NewAliasTable(extra), nil
}

// userError renders err for the terminal: the catalogued message, then the
// technical detail for classified errors.
func userError(err error) string {
	if !core.IsUserFacing(err) {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("error: %s\n  %s", core.FormatUserError(err), err.Error())
}
