// Package encoding normalizes text inputs to UTF-8. OCR dumps and SMS
// exports arrive from phones and scanners with inconsistent encodings, so
// everything is decoded before it reaches the extraction pipeline.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffLen bounds how much of the input is examined for BOM and charset
// detection.
const sniffLen = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r with whatever decoding its content needs to come out
// as UTF-8. A UTF-8 BOM is stripped, UTF-16 is decoded per its BOM, valid
// UTF-8 passes through untouched, and anything else goes through charset
// detection with Windows-1252 as the last resort.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peeking input: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(head, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case bytes.HasPrefix(head, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if dec := decoderFor(result.Charset); dec != nil {
			return transform.NewReader(br, dec), nil
		}
		if result.Charset == "UTF-8" {
			return br, nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func decoderFor(charset string) transform.Transformer {
	switch charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-9":
		return charmap.ISO8859_9.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	}

	return nil
}
