package filter

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/svgdx/svgdx-pandoc/pkg/convert"
	"github.com/svgdx/svgdx-pandoc/pkg/pandoc"
	"github.com/svgdx/svgdx-pandoc/pkg/render"
)

// Language is the fenced code block class that marks a diagram source.
const Language = "svgdx"

// Options configures a Filter.
type Options struct {
	// Mode is the embedding mode for this invocation, usually
	// ModeFor(format).
	Mode Mode

	// TmpDir overrides the temp-artifact directory. Empty means the
	// platform temp directory.
	TmpDir string

	// Renderer produces SVG from svgdx source. Nil selects the external
	// svgdx command from $PATH.
	Renderer render.Renderer

	// Backends is the PNG converter probe list. Nil selects the default
	// chain at the default density.
	Backends []convert.Backend

	// Logger receives progress output. Nil selects log.Default().
	Logger *log.Logger
}

// Filter rewrites a pandoc AST, replacing svgdx code blocks according to
// the embedding mode. A Filter is built once per invocation and is not
// safe for concurrent use; the document walk is strictly sequential.
type Filter struct {
	mode     Mode
	tmpdir   string
	renderer render.Renderer
	backends []convert.Backend
	logger   *log.Logger

	// The converter is resolved at most once per process, on first PNG
	// need, and read-only afterwards.
	resolveOnce sync.Once
	converter   *convert.Converter
}

// New creates a Filter from opts, applying defaults for nil fields.
func New(opts Options) *Filter {
	f := &Filter{
		mode:     opts.Mode,
		tmpdir:   opts.TmpDir,
		renderer: opts.Renderer,
		backends: opts.Backends,
		logger:   opts.Logger,
	}
	if f.renderer == nil {
		f.renderer = render.NewCommand("")
	}
	if f.backends == nil {
		f.backends = convert.DefaultBackends(0)
	}
	if f.logger == nil {
		f.logger = log.Default()
	}
	return f
}

// ProcessDoc walks doc and replaces every svgdx code block in place.
// Render failures become inline error blocks and the walk continues;
// artifact-write and PNG-conversion failures abort with an error, in which
// case doc is left partially rewritten and must not be emitted.
func (f *Filter) ProcessDoc(ctx context.Context, doc any) error {
	replaced := 0
	err := pandoc.Walk(doc, pandoc.CodeBlockSelector(Language), func(obj map[string]any, source string) error {
		if err := f.replace(ctx, obj, source); err != nil {
			return err
		}
		replaced++
		return nil
	})
	if err != nil {
		return err
	}
	f.logger.Debugf("Replaced %d svgdx block(s)", replaced)
	return nil
}

// converterHandle resolves the PNG converter on first use and caches it
// for the rest of the process.
func (f *Filter) converterHandle() *convert.Converter {
	f.resolveOnce.Do(func() {
		f.converter = convert.Resolve(f.backends...)
		if f.converter.Available() {
			f.logger.Debugf("Resolved PNG converter: %s", f.converter.Backend())
		} else {
			f.logger.Warn("No PNG converter available")
		}
	})
	return f.converter
}
