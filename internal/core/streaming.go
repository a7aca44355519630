package core

// streaming.go cleans CSV bytes before they are tokenized. Spreadsheet
// exports arrive with byte order marks, the odd Latin-1 byte and accents in
// decomposed form; WrapInput folds all of that into plain NFC UTF-8.

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrFileTooLarge is returned once more than the configured limit has been read.
var ErrFileTooLarge = errors.New("file too large")

// LimitedReader wraps an io.Reader and fails with ErrFileTooLarge once more
// than Limit bytes have been read. A Limit of 0 disables the check.
type LimitedReader struct {
	reader    io.Reader
	BytesRead int64
	Limit     int64
}

// NewLimitedReader creates a size-limited reader.
func NewLimitedReader(r io.Reader, limit int64) *LimitedReader {
	return &LimitedReader{reader: r, Limit: limit}
}

func (r *LimitedReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	if r.Limit > 0 && r.BytesRead > r.Limit {
		return n, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, r.Limit)
	}
	return n, err
}

// decodeText strips a UTF-8 BOM, decodes UTF-16 input that starts with a
// UTF-16 BOM, and replaces invalid UTF-8 with U+FFFD.
func decodeText() transform.Transformer {
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

// WrapInput limits r to maxSize raw bytes, decodes it to UTF-8 and composes
// accents (NFC), so "e" + U+0301 and "é" yield the same identifier.
// A maxSize of 0 disables the limit.
func WrapInput(r io.Reader, maxSize int64) io.Reader {
	return transform.NewReader(NewLimitedReader(r, maxSize), transform.Chain(decodeText(), norm.NFC))
}
