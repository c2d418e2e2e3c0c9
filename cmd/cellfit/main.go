package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/cellfit/internal/app"
	"github.com/kk-code-lab/cellfit/internal/config"
	fsutil "github.com/kk-code-lab/cellfit/internal/fs"
	"github.com/kk-code-lab/cellfit/internal/log"
	"github.com/kk-code-lab/cellfit/internal/palette"
	statepkg "github.com/kk-code-lab/cellfit/internal/state"
	renderui "github.com/kk-code-lab/cellfit/internal/ui/render"
	"github.com/kk-code-lab/cellfit/internal/ui/surface"
	"golang.org/x/term"
)

const defaultStreamWidth = 80

func printHelp(w io.Writer) {
	fmt.Fprint(w, `cellfit - view text with inline color markup

USAGE:
    cellfit [OPTIONS] [FILE]

FILE defaults to standard input ("-" also reads standard input).

OPTIONS:
    -h, --help          Show this help message and exit
    --strip             Print FILE without color sequences
    --wrap N            Print FILE wrapped to N columns
    --config PATH       Read settings from PATH
`)
}

var errUsage = errors.New("usage")

type options struct {
	help       bool
	strip      bool
	wrap       int
	configPath string
	file       string
}

func parseArgs(args []string) (options, error) {
	var opts options
	takeValue := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%w: %s needs a value", errUsage, name)
		}
		*i++
		return args[*i], nil
	}

	files := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "--strip":
			opts.strip = true
		case arg == "--wrap" || strings.HasPrefix(arg, "--wrap="):
			value, hasValue := strings.CutPrefix(arg, "--wrap=")
			if !hasValue {
				var err error
				if value, err = takeValue(&i, arg); err != nil {
					return opts, err
				}
			}
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("%w: --wrap needs a positive column count, got %q", errUsage, value)
			}
			opts.wrap = n
		case arg == "--config" || strings.HasPrefix(arg, "--config="):
			value, hasValue := strings.CutPrefix(arg, "--config=")
			if !hasValue {
				var err error
				if value, err = takeValue(&i, arg); err != nil {
					return opts, err
				}
			}
			opts.configPath = value
		case arg != "-" && strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("%w: unknown option %s", errUsage, arg)
		default:
			files++
			if files > 1 {
				return opts, fmt.Errorf("%w: only one FILE may be given", errUsage)
			}
			opts.file = arg
		}
	}
	return opts, nil
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "cellfit: %v\n\n", err)
		printHelp(stderr)
		return 2
	}
	if opts.help {
		printHelp(stdout)
		return 0
	}

	cfg, err := config.Load(config.ResolvePath(opts.configPath, os.Getenv), opts.configPath != "")
	if err != nil {
		fmt.Fprintf(stderr, "cellfit: %v\n", err)
		return 1
	}
	cfg.ApplyEnv(os.Getenv)

	closeLog, err := setupLogging(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "cellfit: %v\n", err)
		return 1
	}
	defer closeLog()

	if opts.file == "" && isTerminal(stdin) {
		printHelp(stderr)
		return 2
	}
	name, data, err := fsutil.ReadInput(opts.file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "cellfit: %v\n", err)
		return 1
	}
	doc, err := statepkg.LoadDocument(name, data, cfg.Render.TabWidth)
	if err != nil {
		fmt.Fprintf(stderr, "cellfit: %v\n", err)
		return 1
	}
	log.Debug("document loaded", "name", name, "lines", doc.LineCount(), "bytes", len(data))

	switch {
	case opts.strip:
		return writeOrFail(stderr, writePlain(stdout, doc))
	case opts.wrap == 0 && isTerminal(stdout):
		return runInteractive(doc, cfg, stderr)
	default:
		width := opts.wrap
		if width == 0 {
			width = terminalWidth(stdout)
		}
		colors := cfg.Render.Color && isTerminal(stdout)
		return writeOrFail(stderr, writeStream(stdout, doc, width, colors, cfg.Render.MaxPairs))
	}
}

func runInteractive(doc *statepkg.Document, cfg config.Config, stderr io.Writer) int {
	app, err := apppkg.NewApplication(doc, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing application: %v\n", err)
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return 0
}

// writeStream lays doc out at width and writes it through a Stream surface.
func writeStream(out io.Writer, doc *statepkg.Document, width int, colors bool, maxPairs int) error {
	stream := surface.NewStream(out, width, colors)

	var registry *palette.Registry
	if colors {
		registry = palette.NewRegistry(stream, maxPairs)
	}
	dispatcher := renderui.NewDispatcher(registry)

	state := statepkg.NewAppState(doc, width, 0, true, dispatcher.ColorActive())
	if err := state.Relayout(); err != nil {
		return err
	}
	for i, row := range state.Rows {
		if err := dispatcher.DrawAt(stream, i, 0, row.Markup, state.Styled); err != nil {
			return err
		}
	}
	return stream.End()
}

func writePlain(out io.Writer, doc *statepkg.Document) error {
	_, err := io.WriteString(out, strings.Join(doc.Plain, "\n")+"\n")
	return err
}

func writeOrFail(stderr io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(stderr, "cellfit: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends logs to the configured file. Without one, warnings go
// to stderr only when no TUI can be drawn over.
func setupLogging(cfg config.LogConfig, stderr io.Writer) (func(), error) {
	level := log.ParseLevel(cfg.Level)
	if cfg.File == "" {
		if !isTerminal(os.Stdout) {
			log.Init(stderr, level)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.Init(f, level)
	return func() { _ = f.Close() }, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(v any) int {
	if f, ok := v.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultStreamWidth
}
