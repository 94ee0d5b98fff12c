package filter

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/svgdx/svgdx-pandoc/pkg/errors"
	"github.com/svgdx/svgdx-pandoc/pkg/observability"
	"github.com/svgdx/svgdx-pandoc/pkg/pandoc"
)

// ArtifactPrefix makes filter-created temp files recognizable, e.g. for
// cleanup by an outer build script.
const ArtifactPrefix = "tmp-svgdx-"

// block is the computed replacement for one svgdx code block: raw HTML
// (inline SVG or an error fragment) or a path to an image file.
type block struct {
	html string
	path string
}

// replace renders source and rewrites obj in place with the result.
func (f *Filter) replace(ctx context.Context, obj map[string]any, source string) error {
	b, err := f.buildBlock(ctx, source)
	if err != nil {
		return err
	}
	if b.path != "" {
		pandoc.SetImagePara(obj, b.path)
	} else {
		pandoc.SetRawBlock(obj, "html", b.html)
	}
	return nil
}

// buildBlock runs the render / materialize / convert chain for one code
// block. Render failures come back as an error-fragment block, never as an
// error: they must stay visible in the document regardless of embedding
// mode, and must not abort the run.
func (f *Filter) buildBlock(ctx context.Context, source string) (block, error) {
	hooks := observability.Filter()

	hooks.OnRenderStart(ctx)
	start := time.Now()
	outcome := f.renderer.Render(ctx, source)
	if outcome.Failed() {
		hooks.OnRenderComplete(ctx, time.Since(start), errors.New(errors.ErrCodeRenderFailed, "svgdx render failed"))
		f.logger.Warn("svgdx render failed, emitting inline error block")
		return block{html: outcome.Error}, nil
	}
	hooks.OnRenderComplete(ctx, time.Since(start), nil)

	if f.mode == Inline {
		return block{html: outcome.SVG}, nil
	}

	svgPath, err := f.writeArtifact(ctx, outcome.SVG)
	if err != nil {
		return block{}, err
	}
	if f.mode == SVGFile {
		return block{path: svgPath}, nil
	}

	conv := f.converterHandle()
	hooks.OnConvertStart(ctx, conv.Backend(), svgPath)
	start = time.Now()
	pngPath, err := conv.ToPNG(svgPath)
	hooks.OnConvertComplete(ctx, conv.Backend(), time.Since(start), err)
	if err != nil {
		// Fatal by design: a dangling image link in a delivered document
		// is easy to miss, an aborted run is not.
		return block{}, err
	}
	return block{path: pngPath}, nil
}

// writeArtifact writes the SVG to a uniquely named file that must outlive
// this process: the output document only references the path, and pandoc
// reads the file after the filter exits.
func (f *Filter) writeArtifact(ctx context.Context, svg string) (string, error) {
	dir := f.tmpdir
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, ArtifactPrefix+uuid.NewString()+".svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeArtifactWrite, err, "write SVG artifact %s", path)
	}
	observability.Filter().OnArtifactWritten(ctx, path, len(svg))
	f.logger.Debugf("Wrote artifact %s (%d bytes)", path, len(svg))
	return path, nil
}
