package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/compass"
	"github.com/fwojciec/compass/glamour"
	compasshttp "github.com/fwojciec/compass/http"
	compassslog "github.com/fwojciec/compass/slog"
	compassviper "github.com/fwojciec/compass/viper"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// LoadConfig reads configuration from a file path. Set before calling Run().
	LoadConfig func(path string) (compass.Config, error)

	// Services for end-to-end testing. HTTP implementations are used when nil.
	Cases    compass.CaseService
	Coacher  compass.Coacher
	Health   compass.HealthChecker
	Renderer compass.Renderer

	logFile io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LoadConfig: compassviper.Load,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("compass"),
		kong.Description("Search coaching cases and get guidance drawn from them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'compass --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := m.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set COMPASS_CONFIG or pass --config to use a different config file")
		return err
	}
	applyFlags(&cfg, cli)
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	logOut := stderr
	if cmd == "tui" {
		// Logs would corrupt the full-screen view.
		logOut = io.Discard
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.LogFile, err)
		}
		m.logFile = f
		defer m.Close()
		logOut = f
	}
	logger, err := compassslog.NewLogger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	// Wire services into dependencies
	client := compasshttp.NewClient(cfg.BaseURL, compasshttp.WithTimeout(cfg.Timeout))
	if m.Cases == nil {
		m.Cases = compasshttp.NewCaseService(client)
	}
	if m.Coacher == nil {
		m.Coacher = compasshttp.NewCoacher(client)
	}
	if m.Health == nil {
		m.Health = compasshttp.NewHealthChecker(client)
	}
	deps.Cases = compassslog.NewLoggingCaseService(m.Cases, logger)
	deps.Coacher = compassslog.NewLoggingCoacher(m.Coacher, logger)
	deps.Health = compassslog.NewLoggingHealthChecker(m.Health, logger)

	if cmd == "coach" || cmd == "tui" {
		if m.Renderer == nil {
			renderer, err := glamour.NewRenderer(cfg.Style, cfg.WordWrap)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: style must be auto, a glamour style name such as dark or light, or a JSON style file")
				return err
			}
			m.Renderer = renderer
		}
		deps.Renderer = m.Renderer
	}

	return kongCtx.Run(deps)
}

// applyFlags overrides configuration with flags that were set.
func applyFlags(cfg *compass.Config, cli *CLI) {
	if cli.BaseURL != "" {
		cfg.BaseURL = cli.BaseURL
	}
	if cli.Timeout != 0 {
		cfg.Timeout = cli.Timeout
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.LogFile = cli.LogFile
	}
}
