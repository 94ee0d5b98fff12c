// Package cli implements the svgdx-pandoc command-line interface.
//
// The binary is a pandoc JSON filter: pandoc spawns it with the target
// output format as the only argument, writes the document AST to its
// stdin, and reads the rewritten AST from its stdout. Because stdout
// belongs to the AST, all logging goes to stderr.
//
// # Commands
//
//   - (root): run the filter (stdin AST → stdout AST)
//   - doctor: report availability of the renderer and PNG converters
//
// # Usage
//
//	pandoc --filter svgdx-pandoc input.md -o output.html
//
// Configuration that pandoc cannot pass as flags comes from the
// environment: SVGDX_PANDOC_TMPDIR for the temp-artifact directory and
// SVGDX_PANDOC_CONFIG for a TOML config file.
package cli
