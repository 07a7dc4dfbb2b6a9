package tabular

import (
	"io"
	"strings"

	apperrors "courseeda/internal/errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Common spellings that the WHATWG/IANA indexes do not know
var encodingAliases = map[string]string{
	"latin-1":   "latin1",
	"latin_1":   "latin1",
	"utf8":      "utf-8",
	"utf_8":     "utf-8",
	"utf-8-sig": "utf-8",
	"utf_16":    "utf-16",
	"cp-1252":   "windows-1252",
}

// LookupEncoding resolves an encoding name. Empty and UTF-8 names return nil, nil.
func LookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[key]; ok {
		key = alias
	}
	if key == "" || key == "utf-8" {
		return nil, nil
	}

	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	return nil, apperrors.InvalidInput("unknown text encoding: " + name)
}

// decodingReader converts r from the named encoding to UTF-8.
// A leading byte order mark is honoured and removed.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	var fallback transform.Transformer = transform.Nop
	if enc != nil {
		fallback = enc.NewDecoder()
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback)), nil
}
