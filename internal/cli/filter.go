package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/svgdx/svgdx-pandoc/pkg/config"
	"github.com/svgdx/svgdx-pandoc/pkg/filter"
	"github.com/svgdx/svgdx-pandoc/pkg/pandoc"
	"github.com/svgdx/svgdx-pandoc/pkg/render"
)

// filterOpts holds the command-line flags for the filter run.
type filterOpts struct {
	format     string // target output format (positional argument 1)
	tmpdir     string // temp-artifact directory override
	configPath string // TOML config file path
	svgdxCmd   string // renderer executable override
}

// runFilter reads a pandoc AST from in, rewrites svgdx code blocks, and
// writes the result to out. Any returned error is fatal: the caller exits
// non-zero and no (complete) document reaches out.
func runFilter(ctx context.Context, in io.Reader, out io.Writer, opts filterOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	tmpdir := firstNonEmpty(opts.tmpdir, os.Getenv(config.EnvTmpDir), cfg.TmpDir)
	svgdxCmd := firstNonEmpty(opts.svgdxCmd, cfg.SvgdxCommand)

	mode := filter.ModeFor(opts.format)
	logger.Debugf("Output format %q, embedding mode %s", opts.format, mode)

	doc, err := pandoc.ReadDoc(in)
	if err != nil {
		return err
	}

	f := filter.New(filter.Options{
		Mode:     mode,
		TmpDir:   tmpdir,
		Renderer: render.NewCommand(svgdxCmd),
		Backends: cfg.Backends(),
		Logger:   logger,
	})

	prog := newProgress(logger)
	if err := f.ProcessDoc(ctx, doc); err != nil {
		return err
	}
	prog.done("Processed document")

	return pandoc.WriteDoc(out, doc)
}

// loadConfig resolves the config path (flag, then environment) and loads it.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	return config.Load(path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// logHooks logs filter events at debug level. Registered when --verbose
// is set.
type logHooks struct {
	logger *charmlog.Logger
}

func (h *logHooks) OnRenderStart(context.Context) {
	h.logger.Debug("Rendering svgdx block")
}

func (h *logHooks) OnRenderComplete(_ context.Context, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Render failed after %s", d.Round(time.Millisecond))
		return
	}
	h.logger.Debugf("Rendered in %s", d.Round(time.Millisecond))
}

func (h *logHooks) OnConvertStart(_ context.Context, backend, svgPath string) {
	h.logger.Debugf("Converting %s with %s", svgPath, backend)
}

func (h *logHooks) OnConvertComplete(_ context.Context, backend string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("%s failed after %s: %v", backend, d.Round(time.Millisecond), err)
		return
	}
	h.logger.Debugf("%s converted in %s", backend, d.Round(time.Millisecond))
}

func (h *logHooks) OnArtifactWritten(_ context.Context, path string, size int) {
	h.logger.Debugf("Artifact %s (%s)", path, humanSize(size))
}

func humanSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	return fmt.Sprintf("%.1fKiB", float64(n)/1024)
}
