package pandoc

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// codeBlock builds a CodeBlock node with the given classes and text.
func codeBlock(text string, classes ...string) map[string]any {
	cs := make([]any, len(classes))
	for i, c := range classes {
		cs[i] = c
	}
	return map[string]any{
		"t": "CodeBlock",
		"c": []any{
			[]any{"", cs, []any{}},
			text,
		},
	}
}

// sampleDoc builds a small pandoc-shaped document with blocks nested under
// the usual top-level keys.
func sampleDoc(blocks ...any) map[string]any {
	return map[string]any{
		"pandoc-api-version": []any{"1", "23"},
		"meta":               map[string]any{},
		"blocks":             blocks,
	}
}

func deepCopy(t *testing.T, v any) any {
	t.Helper()
	switch node := v.(type) {
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = deepCopy(t, item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = deepCopy(t, val)
		}
		return out
	default:
		return node
	}
}

func TestWalkNoMatchLeavesDocumentIdentical(t *testing.T) {
	doc := sampleDoc(
		map[string]any{"t": "Para", "c": []any{map[string]any{"t": "Str", "c": "hello"}}},
		codeBlock("fn main() {}", "rust"),
		[]any{true, nil, "scalar", map[string]any{"nested": []any{map[string]any{"t": "Space"}}}},
	)
	want := deepCopy(t, doc)

	err := Walk(doc, CodeBlockSelector("svgdx"), func(obj map[string]any, content string) error {
		t.Fatalf("replacer called on %v", obj)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("document changed by a no-match walk:\ngot  %v\nwant %v", doc, want)
	}
}

func TestWalkVisitsNestedObjects(t *testing.T) {
	doc := sampleDoc(
		codeBlock("rect: x=0", "svgdx"),
		map[string]any{
			"t": "Div",
			"c": []any{
				[]any{"", []any{}, []any{}},
				[]any{codeBlock("circle: r=5", "svgdx")},
			},
		},
	)

	var got []string
	err := Walk(doc, CodeBlockSelector("svgdx"), func(obj map[string]any, content string) error {
		got = append(got, content)
		SetRawBlock(obj, "html", "<svg/>")
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := map[string]bool{"rect: x=0": true, "circle: r=5": true}
	if len(got) != 2 {
		t.Fatalf("replaced %d blocks, want 2 (%v)", len(got), got)
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected content %q", c)
		}
	}
}

func TestWalkVisitsEachObjectOnce(t *testing.T) {
	inner := codeBlock("a", "svgdx")
	doc := sampleDoc(inner, map[string]any{"t": "Para", "c": []any{}})

	count := 0
	err := Walk(doc, CodeBlockSelector("svgdx"), func(obj map[string]any, content string) error {
		count++
		// Replacement that does not match the selector again.
		SetRawBlock(obj, "html", "<svg/>")
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if count != 1 {
		t.Errorf("replacer ran %d times, want 1", count)
	}
}

func TestWalkRecursesIntoReplacement(t *testing.T) {
	doc := sampleDoc(codeBlock("rect: x=0", "svgdx"))

	visited := 0
	sel := func(obj map[string]any) (string, bool) {
		visited++
		return CodeBlockSelector("svgdx")(obj)
	}
	err := Walk(doc, sel, func(obj map[string]any, content string) error {
		SetImagePara(obj, "/tmp/x.svg")
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	// The Image object inside the replacement Para must itself have been
	// offered to the selector.
	if visited < 3 {
		t.Errorf("selector saw %d objects, want at least 3 (doc, para, image)", visited)
	}
}

func TestWalkPropagatesReplacerError(t *testing.T) {
	doc := sampleDoc(codeBlock("a", "svgdx"), codeBlock("b", "svgdx"))
	boom := errors.New("boom")

	calls := 0
	err := Walk(doc, CodeBlockSelector("svgdx"), func(obj map[string]any, content string) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Walk() error = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("replacer ran %d times after error, want 1", calls)
	}
}

func TestWalkScalarsAreLeaves(t *testing.T) {
	for _, v := range []any{nil, true, "text", 3.0} {
		if err := Walk(v, CodeBlockSelector("svgdx"), nil); err != nil {
			t.Errorf("Walk(%v) error = %v", v, err)
		}
	}
}

func TestWalkLargeDocumentTerminates(t *testing.T) {
	// Deeply nested arrays and objects; mostly a guard against accidental
	// re-visiting when replacements are inserted.
	doc := any(codeBlock("x", "svgdx"))
	for i := 0; i < 100; i++ {
		doc = map[string]any{"t": "Div", "c": []any{doc}}
	}

	count := 0
	err := Walk(doc, CodeBlockSelector("svgdx"), func(obj map[string]any, content string) error {
		count++
		SetRawBlock(obj, "html", strings.Repeat("<p/>", 3))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if count != 1 {
		t.Errorf("replacer ran %d times, want 1", count)
	}
}
