// Package convert discovers and drives SVG-to-PNG conversion backends.
//
// # Overview
//
// Output formats like docx and pptx cannot embed SVG, so the filter
// converts rendered diagrams to PNG. Conversion is delegated to whichever
// external tool is installed; backends are probed in a fixed priority
// order and the first available one wins:
//
//  1. ImageMagick (magick)
//  2. Inkscape (inkscape)
//  3. librsvg (rsvg-convert)
//
// Probing only checks that the executable exists and runs (a version
// query), not that it converts correctly. When nothing is available the
// resolver yields a handle whose every conversion fails with a descriptive
// error; callers treat that as fatal rather than shipping a document with
// missing images.
//
// A pure-Go rasterizer ([Raster]) is also available. It never takes part
// in probing; it is only used when the configuration names it explicitly.
package convert

import (
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/svgdx/svgdx-pandoc/pkg/errors"
)

// DefaultDPI is the raster density used when the configuration does not
// set one.
const DefaultDPI = 300

// Backend converts an SVG file into a PNG file.
type Backend interface {
	// Name identifies the backend in logs, config and diagnostics.
	Name() string

	// Supported reports whether the backend can be invoked at all. It is a
	// cheap capability check, not a correctness guarantee.
	Supported() bool

	// Convert renders svgPath into pngPath. The error carries the tool's
	// diagnostic output or the spawn failure.
	Convert(svgPath, pngPath string) error
}

// ImageMagick converts via `magick -density <dpi> in.svg out.png`.
type ImageMagick struct {
	DPI int
}

func (ImageMagick) Name() string { return "magick" }

func (ImageMagick) Supported() bool {
	return exec.Command("magick", "-version").Run() == nil
}

func (m ImageMagick) Convert(svgPath, pngPath string) error {
	out, err := exec.Command("magick",
		"-density", strconv.Itoa(dpiOrDefault(m.DPI)),
		svgPath, pngPath,
	).CombinedOutput()
	if err != nil {
		return convertErr("magick", out, err)
	}
	return nil
}

// Inkscape converts via `inkscape --export-type=png`.
type Inkscape struct {
	DPI int
}

func (Inkscape) Name() string { return "inkscape" }

func (Inkscape) Supported() bool {
	return exec.Command("inkscape", "--version").Run() == nil
}

func (i Inkscape) Convert(svgPath, pngPath string) error {
	out, err := exec.Command("inkscape",
		"--export-type=png",
		"--export-dpi="+strconv.Itoa(dpiOrDefault(i.DPI)),
		"--export-filename", pngPath,
		svgPath,
	).CombinedOutput()
	if err != nil {
		return convertErr("inkscape", out, err)
	}
	return nil
}

// RSVG converts via librsvg's `rsvg-convert`.
type RSVG struct {
	DPI int
}

func (RSVG) Name() string { return "rsvg-convert" }

func (RSVG) Supported() bool {
	return exec.Command("rsvg-convert", "--version").Run() == nil
}

func (r RSVG) Convert(svgPath, pngPath string) error {
	dpi := strconv.Itoa(dpiOrDefault(r.DPI))
	out, err := exec.Command("rsvg-convert",
		"--format", "png",
		"--dpi-x", dpi,
		"--dpi-y", dpi,
		"--output", pngPath,
		svgPath,
	).CombinedOutput()
	if err != nil {
		return convertErr("rsvg-convert", out, err)
	}
	return nil
}

// Unavailable is the backend of last resort: always "supported", always
// fails. It exists so a resolved Converter can report a useful error at
// conversion time instead of resolution time.
type Unavailable struct{}

func (Unavailable) Name() string    { return "none" }
func (Unavailable) Supported() bool { return true }

func (Unavailable) Convert(_, _ string) error {
	return errors.New(errors.ErrCodeNoConverter,
		"no supported SVG to PNG converter found (tried magick, inkscape, rsvg-convert)")
}

// DefaultBackends returns the probe order used when no backend is
// configured explicitly.
func DefaultBackends(dpi int) []Backend {
	return []Backend{
		ImageMagick{DPI: dpi},
		Inkscape{DPI: dpi},
		RSVG{DPI: dpi},
	}
}

// ByName returns the backend with the given config name, or nil for an
// unknown name. Valid names: magick, inkscape, rsvg-convert, builtin.
func ByName(name string, dpi int) Backend {
	switch name {
	case "magick":
		return ImageMagick{DPI: dpi}
	case "inkscape":
		return Inkscape{DPI: dpi}
	case "rsvg-convert":
		return RSVG{DPI: dpi}
	case "builtin":
		return Raster{DPI: dpi}
	default:
		return nil
	}
}

// Converter is a resolved conversion handle. It wraps exactly one backend
// and is read-only after resolution.
type Converter struct {
	backend Backend
}

// Resolve probes backends in order and wraps the first available one.
// When none is available the returned Converter fails every conversion
// with a descriptive error.
func Resolve(backends ...Backend) *Converter {
	for _, b := range backends {
		if b.Supported() {
			return &Converter{backend: b}
		}
	}
	return &Converter{backend: Unavailable{}}
}

// Backend returns the name of the resolved backend ("none" when no backend
// was available).
func (c *Converter) Backend() string {
	return c.backend.Name()
}

// Available reports whether a real backend was resolved.
func (c *Converter) Available() bool {
	_, none := c.backend.(Unavailable)
	return !none
}

// ToPNG converts svgPath into a sibling PNG (same stem, .png extension)
// and returns the PNG path.
func (c *Converter) ToPNG(svgPath string) (string, error) {
	pngPath := strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
	if err := c.backend.Convert(svgPath, pngPath); err != nil {
		return "", err
	}
	return pngPath, nil
}

func dpiOrDefault(dpi int) int {
	if dpi <= 0 {
		return DefaultDPI
	}
	return dpi
}

func convertErr(tool string, output []byte, cause error) error {
	if msg := strings.TrimSpace(string(output)); msg != "" {
		return errors.Wrap(errors.ErrCodeConvertFailed, cause, "%s: %s", tool, msg)
	}
	return errors.Wrap(errors.ErrCodeConvertFailed, cause, "%s", tool)
}
