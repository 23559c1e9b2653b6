package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/leofalp/laxjson"
	"github.com/leofalp/laxjson/dates"
	"github.com/leofalp/laxjson/internal/clilog"
)

var ErrCheckFailed = errors.New("some inputs are not parsable")

// Context carries the resolved global state into each command.
type Context struct {
	Options *laxjson.Options
	Stdout  io.Writer
	Verbose bool
}

// input is one unit of work: a file, or stdin when no paths were given.
type input struct {
	Name string
	Text string
}

// CleanFlags mirrors every library option as a command-line flag.
// Embedded by the commands that run the cleaning pass.
type CleanFlags struct {
	ConvertNumbers     bool     `help:"Convert numeric strings to numbers."`
	ConvertNaN         bool     `help:"Convert NaN strings to NaN." name:"convert-nan"`
	ConvertBooleans    bool     `help:"Convert true/false strings to booleans."`
	ConvertDates       bool     `help:"Convert ISO and custom-format date strings."`
	ConvertHTML        bool     `help:"Convert HTML strings to Markdown." name:"convert-html"`
	RemoveNulls        bool     `help:"Drop null values."`
	RemoveUndefined    bool     `help:"Remove keys with undefined values instead of folding them to null."`
	RemoveEmptyObjects bool     `help:"Drop objects that end up empty."`
	RemoveEmptyArrays  bool     `help:"Drop arrays that end up empty."`
	Strict             bool     `help:"Drop strings and scalars no conversion claimed."`
	DateFormat         []string `help:"Custom date format to try, e.g. DD/MM/YYYY. Repeatable." name:"date-format"`
}

// apply layers the flags over the configuration-file options.
func (f *CleanFlags) apply(base *laxjson.Options) *laxjson.Options {
	opts := *base
	opts.ConvertNumbers = opts.ConvertNumbers || f.ConvertNumbers
	opts.ConvertNaN = opts.ConvertNaN || f.ConvertNaN
	opts.ConvertBooleans = opts.ConvertBooleans || f.ConvertBooleans
	opts.ConvertDates = opts.ConvertDates || f.ConvertDates
	opts.ConvertHTML = opts.ConvertHTML || f.ConvertHTML
	opts.RemoveNulls = opts.RemoveNulls || f.RemoveNulls
	opts.RemoveUndefined = opts.RemoveUndefined || f.RemoveUndefined
	opts.RemoveEmptyObjects = opts.RemoveEmptyObjects || f.RemoveEmptyObjects
	opts.RemoveEmptyArrays = opts.RemoveEmptyArrays || f.RemoveEmptyArrays
	opts.StrictMode = opts.StrictMode || f.Strict
	for _, format := range f.DateFormat {
		opts.DateFormats = append(opts.DateFormats, dates.Format(format))
	}
	return &opts
}

// RepairCmd rewrites near-JSON text into valid JSON without cleaning it.
type RepairCmd struct {
	Paths           []string `arg:"" optional:"" help:"Input files. Reads stdin when omitted." type:"existingfile"`
	Compact         bool     `help:"Emit compact JSON instead of indented."`
	RemoveUndefined bool     `help:"Remove keys with undefined values instead of folding them to null."`
}

func (cmd *RepairCmd) Run(ctx *Context) error {
	opts := *ctx.Options
	opts.RemoveUndefined = opts.RemoveUndefined || cmd.RemoveUndefined

	inputs, err := readInputs(cmd.Paths)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		repaired, err := laxjson.RepairText(in.Text, &opts)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		rendered, err := renderJSONText(repaired, cmd.Compact)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		fmt.Fprintln(ctx.Stdout, rendered)
	}
	return nil
}

// CleanCmd repairs, parses, and cleans each input.
type CleanCmd struct {
	CleanFlags
	Paths    []string `arg:"" optional:"" help:"Input files. Reads stdin when omitted." type:"existingfile"`
	Compact  bool     `help:"Emit compact JSON instead of indented."`
	Parallel int      `help:"Number of files cleaned concurrently. 0 means CPU count." default:"0"`
}

func (cmd *CleanCmd) Run(ctx *Context) error {
	opts := cmd.apply(ctx.Options)

	inputs, err := readInputs(cmd.Paths)
	if err != nil {
		return err
	}

	parallel := cmd.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	// Clean concurrently, print in input order.
	results := make([]string, len(inputs))
	var group errgroup.Group
	group.SetLimit(parallel)
	for i, in := range inputs {
		group.Go(func() error {
			cleaned, err := laxjson.ParseString(in.Text, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			rendered, err := renderJSON(cleaned, cmd.Compact)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			results[i] = rendered
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		fmt.Fprintln(ctx.Stdout, result)
	}
	return nil
}

// CheckCmd reports which inputs stay unparsable even after repair.
type CheckCmd struct {
	Paths []string `arg:"" optional:"" help:"Input files. Reads stdin when omitted." type:"existingfile"`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	inputs, err := readInputs(cmd.Paths)
	if err != nil {
		return err
	}

	okTag := color.New(color.FgGreen).Sprint("ok")
	failTag := color.New(color.FgRed).Sprint("FAIL")

	failed := 0
	for _, in := range inputs {
		if _, err := laxjson.RepairText(in.Text, ctx.Options); err != nil {
			failed++
			fmt.Fprintf(ctx.Stdout, "%s %s: %v\n", failTag, in.Name, err)
			continue
		}
		fmt.Fprintf(ctx.Stdout, "%s   %s\n", okTag, in.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, failed, len(inputs))
	}
	return nil
}

// CLI is the top-level command tree.
var CLI struct {
	Config  string `help:"Path to the YAML config file." type:"path"`
	EnvFile string `help:"Env file to load before reading configuration." type:"path"`
	Verbose bool   `short:"v" help:"Log recovery details to stderr."`
	Quiet   bool   `help:"Only log errors."`
	NoColor bool   `help:"Disable colored output."`

	Repair RepairCmd `cmd:"" help:"Rewrite near-JSON input into valid JSON."`
	Clean  CleanCmd  `cmd:"" help:"Repair, parse, and clean input."`
	Check  CheckCmd  `cmd:"" help:"Report inputs that stay unparsable after repair."`
}

func main() {
	parsed := kong.Parse(&CLI,
		kong.Name("laxjson"),
		kong.Description("Lenient JSON repair and cleaning."),
		kong.UsageOnError(),
	)

	if CLI.NoColor {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	if CLI.Quiet {
		level = slog.LevelError
	}
	logger := slog.New(clilog.NewHandler(&clilog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config, err := LoadConfig(CLI.Config, CLI.EnvFile)
	parsed.FatalIfErrorf(err)

	opts := config.Options()
	opts.LogOnFail = CLI.Verbose
	opts.Logger = logger

	err = parsed.Run(&Context{
		Options: opts,
		Stdout:  os.Stdout,
		Verbose: CLI.Verbose,
	})
	parsed.FatalIfErrorf(err)
}

// readInputs loads each named file, or stdin when no paths were given.
func readInputs(paths []string) ([]input, error) {
	if len(paths) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []input{{Name: "stdin", Text: string(raw)}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, input{Name: path, Text: string(raw)})
	}
	return inputs, nil
}

// renderJSON marshals a cleaned tree, indented unless compact.
func renderJSON(value any, compact bool) (string, error) {
	var encoded []byte
	var err error
	if compact {
		encoded, err = json.Marshal(value)
	} else {
		encoded, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("failed to render JSON: %w", err)
	}
	return string(encoded), nil
}

// renderJSONText re-indents already-valid JSON text.
func renderJSONText(text string, compact bool) (string, error) {
	var tree any
	if err := json.Unmarshal([]byte(text), &tree); err != nil {
		return "", fmt.Errorf("failed to render JSON: %w", err)
	}
	return renderJSON(tree, compact)
}
