// Package filter implements the svgdx document filter.
//
// # Overview
//
// The filter walks a pandoc AST, replacing every `svgdx`-fenced code block
// with rendered SVG content. How the SVG is embedded depends on the target
// output format:
//
//   - markdown, html, epub: SVG markup inlined as a RawBlock
//   - docx, pptx: SVG converted to a temp PNG file, linked as an Image
//   - everything else (pdf, latex, ...): SVG written to a temp file,
//     linked as an Image
//
// Render failures are recovered: the offending block becomes a visible
// inline error fragment and processing continues. Everything else — an
// unwritable temp file, a missing or failing PNG converter — aborts the
// run, because a document with a silently missing diagram is worse than no
// document.
//
// Temp image files intentionally outlive the process: the filter only
// emits their paths, and pandoc reads the files after the filter exits.
package filter
