// Package render wraps the external svgdx renderer.
//
// The filter treats svgdx as an opaque program: source text goes in on
// stdin, SVG markup comes out on stdout, diagnostics arrive on stderr. The
// package normalizes that exchange into an [Outcome] and applies the
// post-processing the downstream markup format needs (blank-line removal
// inside raw HTML).
package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the renderer executable invoked when no override is
// configured.
const DefaultCommand = "svgdx"

// Outcome is the result of rendering one svgdx source block: either the
// sanitized SVG markup, or an HTML fragment describing the failure.
type Outcome struct {
	SVG   string // rendered SVG, blank lines removed; empty on failure
	Error string // formatted error fragment; empty on success
}

// Failed reports whether rendering produced an error fragment.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

// Renderer turns svgdx source text into an Outcome.
type Renderer interface {
	Render(ctx context.Context, source string) Outcome
}

// Command renders by spawning the svgdx CLI, feeding the source on stdin
// and reading the SVG from stdout.
type Command struct {
	path string
}

// NewCommand creates a Command renderer. An empty path selects
// [DefaultCommand] from $PATH.
func NewCommand(path string) *Command {
	if path == "" {
		path = DefaultCommand
	}
	return &Command{path: path}
}

// Path returns the executable this renderer invokes.
func (c *Command) Path() string {
	return c.path
}

// Supported reports whether the renderer executable can be spawned. It only
// checks that the program exists and runs, not that it renders correctly.
func (c *Command) Supported() bool {
	return exec.Command(c.path, "--version").Run() == nil
}

// Render invokes the renderer once, blocking until it exits. A non-zero
// exit turns the process stderr (or the spawn error) into an inline error
// fragment; success output is stripped of blank lines.
func (c *Command) Render(ctx context.Context, source string) Outcome {
	cmd := exec.CommandContext(ctx, c.path)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return Outcome{Error: ErrorFragment(msg)}
	}
	return Outcome{SVG: StripBlankLines(stdout.String())}
}

// StripBlankLines removes empty and whitespace-only lines from s. Blank
// lines inside raw HTML make markdown resume normal block parsing, which
// corrupts inline SVG when indentation starts an implicit code block.
// See https://spec.commonmark.org/0.31.2/#html-blocks.
func StripBlankLines(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// ErrorFragment wraps a renderer diagnostic in a bordered red div so the
// failure is visible in the generated document instead of silently dropped.
func ErrorFragment(msg string) string {
	return fmt.Sprintf(`<div style="color: red; border: 5px double red; padding: 1em;">%s</div>`,
		strings.ReplaceAll(msg, "\n", "<br/>"))
}
