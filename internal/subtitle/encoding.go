package subtitle

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// utf-8 that strips a leading BOM on decode and writes one on encode
var bomUTF8 = unicode.UTF8BOM

// DecodeText strips an optional byte-order mark, rejects invalid UTF-8 and
// normalizes line endings to "\n".
func DecodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}

	out, _, err := transform.Bytes(bomUTF8.NewDecoder(), data)
	if err != nil {
		return "", err
	}

	text := strings.ReplaceAll(string(out), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// EncodeText renders text as UTF-8 with a leading byte-order mark.
func EncodeText(text string) ([]byte, error) {
	out, _, err := transform.Bytes(bomUTF8.NewEncoder(), []byte(text))
	if err != nil {
		return nil, err
	}
	return out, nil
}
