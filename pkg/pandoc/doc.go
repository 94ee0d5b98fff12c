// Package pandoc provides generic traversal and node construction for the
// pandoc JSON AST.
//
// # Overview
//
// Pandoc filters exchange the document as a schemaless JSON tree: nested
// arrays, objects, strings, numbers, booleans and nulls. Rather than model
// the full pandoc type hierarchy, this package works directly on decoded
// `any` values and exposes:
//
//   - [Walk]: a recursive in-place rewriting traversal
//   - [CodeBlockSelector]: recognition of fenced code blocks by class
//   - [SetRawBlock], [SetImagePara]: in-place replacement node encodings
//   - [ReadDoc], [WriteDoc]: JSON decode/encode preserving number fidelity
//
// # Node Shapes
//
// The pandoc JSON AST encodes typed nodes as objects with a "t" tag and a
// "c" content value. The shapes this package produces or consumes:
//
//	{"t": "CodeBlock", "c": [[ident, [class, ...], attrs], text]}
//	{"t": "RawBlock", "c": [format, text]}
//	{"t": "Para", "c": [{"t": "Image", "c": [["", [], []], [], [path, ""]]}]}
//
// Anything else is opaque: unmatched nodes are recursed into but never
// inspected beyond their container shape.
package pandoc
