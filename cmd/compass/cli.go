package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/compass"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   compass.Config
	Cases    compass.CaseService
	Coacher  compass.Coacher
	Health   compass.HealthChecker
	Renderer compass.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string        `help:"Path to a TOML config file (default ~/.config/compass/config.toml)"`
	BaseURL  string        `name:"base-url" help:"Backend base URL, overrides config"`
	Timeout  time.Duration `help:"Per-request timeout, overrides config (0 keeps configured value)"`
	LogLevel string        `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFile  string        `name:"log-file" help:"Append logs to this file instead of stderr"`

	Search SearchCmd `cmd:"" help:"Search cases by free-text query"`
	Coach  CoachCmd  `cmd:"" help:"Search, then ask the coach using the selected cases"`
	Show   ShowCmd   `cmd:"" help:"Show cases by id"`
	Health HealthCmd `cmd:"" help:"Check that the backend is up and indexed"`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Start the interactive search and coaching view"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search query"`
	Full  bool     `short:"f" help:"Show full responses instead of summaries"`
	JSON  bool     `name:"json" help:"Print results as JSON"`
}

// CoachCmd is the "coach" subcommand.
type CoachCmd struct {
	Query   []string `arg:"" help:"Search query"`
	CaseIDs []string `short:"i" name:"case-id" help:"Case id to coach from (repeatable); defaults to the top result"`
	Raw     bool     `help:"Print the raw coach response JSON"`

	AllowEmpty bool `name:"allow-empty" help:"Ask the coach with no cases when the search finds nothing (by default the command fails)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	IDs []string `arg:"" name:"case_id" help:"Case ids to show"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}

// TUICmd is the "tui" subcommand.
type TUICmd struct {
	Query []string `arg:"" optional:"" help:"Initial search query"`
}
