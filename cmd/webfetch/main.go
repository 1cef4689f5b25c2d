package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/fetch"
	"github.com/fwojciec/webfetch/goquery"
	"github.com/fwojciec/webfetch/htmltomarkdown"
	"github.com/fwojciec/webfetch/readability"
	"github.com/fwojciec/webfetch/rod"
	wslog "github.com/fwojciec/webfetch/slog"
	"github.com/fwojciec/webfetch/trafilatura"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	Version string

	// Launcher replaces the Chrome launcher, for end-to-end testing.
	Launcher webfetch.Launcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Version: Version,
	}
}

// Run executes the CLI with the given arguments. Without a command the MCP
// server is started on stdin and stdout.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: m.Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webfetch"),
		kong.Description("Fetch web pages with a headless browser and return their content as Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	launcher := m.Launcher
	if launcher == nil {
		var opts []rod.LauncherOption
		if cli.Browser != "" {
			opts = append(opts, rod.WithBin(cli.Browser))
		}
		if cli.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cli.UserAgent))
		}
		launcher = rod.NewLauncher(opts...)
	}

	processor := &fetch.Processor{
		Extractors: []webfetch.Extractor{
			wslog.NewLoggingExtractor(trafilatura.NewExtractor(), "trafilatura", logger),
			wslog.NewLoggingExtractor(readability.NewExtractor(), "readability", logger),
			wslog.NewLoggingExtractor(goquery.NewExtractor(), "goquery", logger),
		},
		Converter: htmltomarkdown.NewConverter(),
		Logger:    logger,
	}

	deps.Handler = fetch.NewHandler(
		wslog.NewLoggingLauncher(launcher, logger),
		wslog.NewLoggingProcessor(processor, logger),
		fetch.Config{
			Debug:       cli.Debug,
			Concurrency: cli.Concurrency,
		},
		logger,
		fetch.WithDomainLimiter(fetch.NewDomainLimiter(cli.RateLimit, 1)),
	)

	return kongCtx.Run(deps)
}

// newLogger writes to stderr; stdout is reserved for tool output.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
