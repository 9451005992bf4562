// Program mjson parses JSON input and writes it in minimal form.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/mjson"
	"github.com/creachadair/mjson/internal/config"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tailscale/hujson"
)

// CLI defines the command-line interface.
type CLI struct {
	Files      []string `arg:"" optional:"" help:"Input files. If none are given, reads from stdin." type:"path"`
	Output     string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Check      bool     `help:"Check that the input is valid, but do not write it."`
	JWCC       bool     `name:"jwcc" help:"Accept JSON with commas and comments."`
	BufferSize int      `help:"Size in bytes of the input buffer."`
	MaxDepth   int      `help:"Maximum nesting depth of arrays and objects."`
	Config     string   `help:"Path to a YAML config file." type:"path"`
	Debug      bool     `help:"Enable debug logging." short:"d"`
}

// errInvalidInput is reported by run when an input failed to parse. The
// details have already been logged.
var errInvalidInput = errors.New("invalid input")

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("mjson"),
		kong.Description("Parse JSON input and write it in minimal form."),
		kong.UsageOnError(),
	)
	if err := run(&cli, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintf(os.Stderr, "mjson: %v\n", err)
		}
		os.Exit(1)
	}
}

// createOutput opens the file named by --output for writing.
var createOutput = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// run processes the inputs named by cli. It returns errInvalidInput if any
// input failed, after processing all of them.
func run(cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.Dev.Debug)

	out := stdout
	if cli.Output != "" && !cli.Check {
		f, oerr := createOutput(cli.Output)
		if oerr != nil {
			return fmt.Errorf("failed to create output: %w", oerr)
		}
		defer func() {
			// A failed close means the output may be incomplete.
			if cerr := f.Close(); cerr != nil && (err == nil || errors.Is(err, errInvalidInput)) {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	opts := cfg.ParseOptions()
	w := mjson.NewWriter(out)
	var failed bool
	process := func(name string, r io.Reader) error {
		v, err := parseInput(r, opts, cfg.Input.JWCC)
		var serr *mjson.SyntaxError
		if errors.As(err, &serr) {
			level.Error(logger).Log("msg", "invalid JSON", "file", name,
				"line", serr.Line, "column", serr.Column, "offset", serr.Offset, "err", serr.Message)
			failed = true
			return nil
		} else if err != nil {
			level.Error(logger).Log("msg", "read failed", "file", name, "err", err)
			failed = true
			return nil
		}
		level.Debug(logger).Log("msg", "parsed input", "file", name, "kind", v.Kind())
		if cli.Check {
			return nil
		}
		if err := w.WriteValue(v); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	if len(cli.Files) == 0 {
		if err := process("<stdin>", stdin); err != nil {
			return err
		}
	}
	for _, path := range cli.Files {
		f, err := os.Open(path)
		if err != nil {
			level.Error(logger).Log("msg", "open failed", "file", path, "err", err)
			failed = true
			continue
		}
		err = process(path, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	if failed {
		return errInvalidInput
	}
	return nil
}

// loadConfig loads the config file named by cli, or found by searching from
// the working directory, and applies the settings from cli over it.
func loadConfig(cli *CLI) (*config.Config, error) {
	cfg := config.NewConfig()
	path := cli.Config
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	if path != "" {
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if cli.BufferSize != 0 {
		cfg.Parse.BufferSize = cli.BufferSize
	}
	if cli.MaxDepth != 0 {
		cfg.Parse.MaxDepth = cli.MaxDepth
	}
	cfg.Input.JWCC = cfg.Input.JWCC || cli.JWCC
	cfg.Dev.Debug = cfg.Dev.Debug || cli.Debug
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseInput parses a single JSON value from r. If jwcc is true, the input
// is standardized from JSON with commas and comments first.
func parseInput(r io.Reader, opts *mjson.ParseOptions, jwcc bool) (mjson.Value, error) {
	if !jwcc {
		return opts.ParseReader(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JWCC: %w", err)
	}
	return opts.ParseBytes(std)
}

func newLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
