// Package textio reads the input text and converts it from a named
// charset to the UTF-8 the layout core works on.
package textio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/ByLCY/folio/layout"
)

// ReadAll reads r to the end and returns its content as UTF-8 text with a
// guaranteed trailing newline. charset names the source encoding by its
// IANA name; empty or a UTF-8 alias means no conversion.
func ReadAll(r io.Reader, charset string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("textio: reading input: %w", err)
	}

	if !isUTF8Name(charset) {
		enc, err := ianaindex.IANA.Encoding(charset)
		if err != nil || enc == nil {
			return "", &layout.EncodingError{Reason: fmt.Sprintf("unknown charset %q", charset)}
		}
		data, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", &layout.EncodingError{Reason: fmt.Sprintf("converting from %s: %v", charset, err)}
		}
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return string(data), nil
}

func isUTF8Name(charset string) bool {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
