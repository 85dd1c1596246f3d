// Package cli implements the frontend-cli subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/prompt"
	"github.com/goliatone/go-frontend/pkg/settings"
)

// ErrUsage is returned when the command line cannot be parsed.
var ErrUsage = errors.New("cli: usage")

// App carries the process streams so commands can be exercised in tests.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Driver answers interactive prompts; nil uses the terminal.
	Driver prompt.Driver
}

// New returns an App bound to the process streams.
func New() *App {
	return &App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

type command struct {
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"classes": {"compute visibility classes for a device selection", (*App).classes},
	"render":  {"render an item tree (JSON) to HTML", (*App).render},
	"schema":  {"print plugin config schemas as OpenAPI components", (*App).schema},
	"tree":    {"print an item tree with computed classes", (*App).tree},
	"edit":    {"edit an item's settings interactively", (*App).edit},
}

var commandOrder = []string{"classes", "render", "tree", "schema", "edit"}

// Run dispatches args[0] to a subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return cmd.run(a, ctx, args[1:])
}

func (a *App) usage() {
	fmt.Fprintln(a.Stderr, "usage: frontend-cli <command> [flags]")
	fmt.Fprintln(a.Stderr)
	for _, name := range commandOrder {
		fmt.Fprintf(a.Stderr, "  %-8s %s\n", name, commands[name].summary)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	return fs
}

func (a *App) driver() prompt.Driver {
	if a.Driver != nil {
		return a.Driver
	}
	return prompt.NewSurveyDriver()
}

func loadSettings(path string) (settings.Settings, error) {
	if strings.TrimSpace(path) == "" {
		return settings.Default(), nil
	}
	return settings.LoadFile(path)
}

// readItem decodes an item from path, or stdin when path is "-".
func (a *App) readItem(path string) (*plugin.Item, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return nil, fmt.Errorf("%w: -item is required", ErrUsage)
	case "-":
		data, err = io.ReadAll(a.Stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read item: %w", err)
	}
	var item plugin.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", path, err)
	}
	return &item, nil
}

func (a *App) write(output string, data []byte) error {
	if output == "" {
		_, err := a.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(a.Stderr, "written to %s\n", output)
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
