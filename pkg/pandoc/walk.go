package pandoc

// Selector inspects an AST object and, when it is a node of interest,
// extracts its textual payload. ok reports whether the node matched.
// Selectors must not mutate the object.
type Selector func(obj map[string]any) (content string, ok bool)

// Replacer rewrites a matched object in place. The object passed in is the
// same map that sits in the document tree, so mutating it rewrites the
// document. A non-nil error aborts the whole traversal.
type Replacer func(obj map[string]any, content string) error

// Walk visits v and, recursively, every element of every array and every
// value of every object it contains. For each object it first applies sel;
// on a match it calls rep, which mutates the object in place. It then
// recurses into the (possibly replaced) children, so replacements are
// themselves traversed. Scalars are leaves.
//
// Every reachable object is visited exactly once per traversal, and the
// traversal terminates because a decoded JSON document is finite and
// acyclic. Replacements must not produce nodes that match sel, or the
// replacement would be rewritten again.
func Walk(v any, sel Selector, rep Replacer) error {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if err := Walk(item, sel, rep); err != nil {
				return err
			}
		}
	case map[string]any:
		if content, ok := sel(node); ok {
			if err := rep(node, content); err != nil {
				return err
			}
		}
		for _, child := range node {
			if err := Walk(child, sel, rep); err != nil {
				return err
			}
		}
	}
	return nil
}
