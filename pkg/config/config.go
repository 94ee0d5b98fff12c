// Package config loads optional filter settings from a TOML file.
//
// Pandoc invokes filters with a single positional argument (the output
// format) and no way to pass flags, so everything else is configured
// through the environment: SVGDX_PANDOC_TMPDIR overrides the temp-artifact
// directory directly, and SVGDX_PANDOC_CONFIG points at a TOML file for
// the rest.
//
// Example config:
//
//	tmpdir = "/var/tmp/diagrams"
//	svgdx_command = "/opt/svgdx/bin/svgdx"
//	converter = "inkscape"   # magick | inkscape | rsvg-convert | builtin
//	png_dpi = 150
//
// An empty or absent config is valid; every field has a working default.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/svgdx/svgdx-pandoc/pkg/convert"
	"github.com/svgdx/svgdx-pandoc/pkg/errors"
)

// Environment variables consumed by the filter.
const (
	// EnvConfig points at the TOML config file.
	EnvConfig = "SVGDX_PANDOC_CONFIG"

	// EnvTmpDir overrides the temp-artifact directory. Takes precedence
	// over the config file's tmpdir.
	EnvTmpDir = "SVGDX_PANDOC_TMPDIR"
)

// Config holds the optional filter settings.
type Config struct {
	// TmpDir is the directory for temp image artifacts. Empty means the
	// platform temp directory.
	TmpDir string `toml:"tmpdir"`

	// SvgdxCommand overrides the renderer executable. Empty means "svgdx"
	// from $PATH.
	SvgdxCommand string `toml:"svgdx_command"`

	// Converter pins a single PNG backend instead of probing the default
	// chain. Recognized: magick, inkscape, rsvg-convert, builtin.
	Converter string `toml:"converter"`

	// PNGDPI is the raster density for PNG conversion. Zero means the
	// backend default (300).
	PNGDPI int `toml:"png_dpi"`
}

// Load reads the TOML config at path. An empty path yields the zero
// config; a missing or malformed file is an error (a config that was asked
// for but cannot be used should not be silently ignored).
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values. It is called by Load but exported so a
// hand-built Config can be checked too.
func (c Config) Validate() error {
	if c.Converter != "" && convert.ByName(c.Converter, c.PNGDPI) == nil {
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown converter %q (expected magick, inkscape, rsvg-convert or builtin)", c.Converter)
	}
	if c.PNGDPI < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "png_dpi must be positive, got %d", c.PNGDPI)
	}
	return nil
}

// Backends returns the converter probe list implied by the config: the
// default chain, or just the pinned backend when one is named. A pinned
// backend that turns out to be unavailable makes PNG conversion fail
// fatally rather than falling back behind the user's back.
func (c Config) Backends() []convert.Backend {
	if c.Converter == "" {
		return convert.DefaultBackends(c.PNGDPI)
	}
	return []convert.Backend{convert.ByName(c.Converter, c.PNGDPI)}
}
