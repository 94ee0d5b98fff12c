package pandoc

// Pandoc node type tags handled by this package.
const (
	tagCodeBlock = "CodeBlock"
	tagRawBlock  = "RawBlock"
	tagPara      = "Para"
	tagImage     = "Image"
)

// CodeBlockSelector returns a Selector that matches fenced code blocks
// whose first class equals lang and extracts their source text.
//
// A match requires the exact CodeBlock shape: a "c" array of two elements,
// the first being the [ident, classes, attrs] triple with a non-empty
// class list, the second a string. Near-misses (wrong arity, wrong tag,
// missing class) are silently ignored so malformed or unrelated nodes pass
// through the filter untouched.
func CodeBlockSelector(lang string) Selector {
	return func(obj map[string]any) (string, bool) {
		if obj["t"] != tagCodeBlock {
			return "", false
		}
		inner, ok := obj["c"].([]any)
		if !ok || len(inner) != 2 {
			return "", false
		}
		meta, ok := inner[0].([]any)
		if !ok || len(meta) != 3 {
			return "", false
		}
		classes, ok := meta[1].([]any)
		if !ok || len(classes) == 0 || classes[0] != lang {
			return "", false
		}
		content, ok := inner[1].(string)
		if !ok {
			return "", false
		}
		return content, true
	}
}

// SetRawBlock rewrites obj in place into a RawBlock carrying markup in the
// given format (e.g. "html").
func SetRawBlock(obj map[string]any, format, markup string) {
	clear(obj)
	obj["t"] = tagRawBlock
	obj["c"] = []any{format, markup}
}

// SetImagePara rewrites obj in place into a Para containing a single Image
// whose target is path. The image carries empty attributes, no caption and
// no title, matching what pandoc produces for a bare `![](path)`.
func SetImagePara(obj map[string]any, path string) {
	clear(obj)
	obj["t"] = tagPara
	obj["c"] = []any{
		map[string]any{
			"t": tagImage,
			"c": []any{
				[]any{"", []any{}, []any{}},
				[]any{},
				[]any{path, ""},
			},
		},
	}
}
