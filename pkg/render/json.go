package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// RawJSON re-indents a gateway document without decoding it, so field order
// and unknown fields survive untouched
func RawJSON(w io.Writer, document []byte) error {
	var indented bytes.Buffer
	if err := json.Indent(&indented, document, "", "  "); err != nil {
		return fmt.Errorf("indent response document: %w", err)
	}
	indented.WriteByte('\n')

	_, err := indented.WriteTo(w)
	return err
}
