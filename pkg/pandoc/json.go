package pandoc

import (
	"encoding/json"
	"io"

	"github.com/svgdx/svgdx-pandoc/pkg/errors"
)

// ReadDoc decodes a pandoc AST from r into a generic value tree.
// Numbers are decoded as json.Number so the document round-trips without
// float conversion artifacts.
func ReadDoc(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode pandoc AST from stdin")
	}
	return doc, nil
}

// WriteDoc encodes the AST to w. HTML escaping is disabled: RawBlock
// contents are full of angle brackets and escaping them only bloats the
// output pandoc has to parse back.
func WriteDoc(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode pandoc AST to stdout")
	}
	return nil
}
