package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// StdinPath names standard input as the source, same as giving no path at all
const StdinPath = "-"

var (
	// ErrEmptyInput is returned when the input has no content to page through
	ErrEmptyInput = errors.New("input was empty")

	// ErrInvalidUTF8 is returned when the input isn't text in any encoding the pager understands
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// ReadInput reads the whole input eagerly, from the file at path or from stdin if path is empty or "-", and
// returns it as UTF-8 text
func ReadInput(path string, stdin io.Reader) (string, error) {
	var (
		content []byte
		err     error
	)
	source := path
	if path == "" || path == StdinPath {
		source = "stdin"
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}

	text, err := NormalizeText(content)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return text, nil
}

// NormalizeText converts content to a UTF-8 string. A UTF-8 byte order mark is dropped and UTF-16 with a byte order
// mark is decoded. Anything else must already be valid UTF-8
func NormalizeText(content []byte) (string, error) {
	var text string
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		text = string(content[3:])
	case encodingUTF16LE:
		decoded, err := decodeUTF16(content, unicode.LittleEndian)
		if err != nil {
			return "", err
		}
		text = decoded
	case encodingUTF16BE:
		decoded, err := decodeUTF16(content, unicode.BigEndian)
		if err != nil {
			return "", err
		}
		text = decoded
	default:
		text = string(content)
	}

	if text == "" {
		return "", ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	return text, nil
}

func detectUnicodeEncoding(content []byte) unicodeEncoding {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return encodingUTF8BOM
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		return encodingUTF16LE
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		return encodingUTF16BE
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoded, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	return string(decoded), nil
}
