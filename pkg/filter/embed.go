package filter

// Mode selects how rendered SVG is embedded in the output document.
type Mode int

const (
	// Inline embeds the SVG markup directly in the document.
	Inline Mode = iota

	// SVGFile writes the SVG to a temp file and links to it.
	SVGFile

	// PNGFile converts the SVG to a temp PNG file and links to it.
	PNGFile
)

// ModeFor maps a pandoc output format to an embedding mode. The mapping is
// total: unrecognized formats, including the empty string, fall back to
// SVGFile. This table is the single source of truth for per-format
// behavior; extend it here, not in the traversal.
func ModeFor(format string) Mode {
	switch format {
	case "markdown", "html", "epub":
		return Inline
	case "docx", "pptx":
		return PNGFile
	default:
		return SVGFile
	}
}

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case SVGFile:
		return "svg-file"
	case PNGFile:
		return "png-file"
	default:
		return "unknown"
	}
}
