package core

// tokenizer.go splits a single line of comma-separated text into fields.
//
// The dialect differs from RFC 4180 (and encoding/csv): quotes inside a
// quoted field are escaped with a backslash (\") instead of being doubled,
// and the whole line must be well formed or it is rejected outright.
//
// Grammar, per field:
//
//	field    = ws ( quoted | unquoted ) ws
//	quoted   = '"' { any char except '"' and '\' | '\' any char } '"'
//	unquoted = { any char except ',' '"' '\' }   (trimmed)
//	line     = field { ',' field }
//
// A trailing comma followed only by whitespace yields one extra empty field.

import (
	"errors"
	"strings"
)

var (
	errUnterminatedQuote = errors.New("unterminated quoted field")
	errTextAfterQuote    = errors.New("unexpected text after quoted field")
	errBareQuote         = errors.New(`quote or backslash in unquoted field`)
)

// Tokenize splits line into field values. A blank line yields no fields.
// Malformed input returns a *Error of kind KindMalformedRow; the caller adds
// the line number.
func Tokenize(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	var fields []string
	pos := 0
	for {
		pos = skipSpace(line, pos)

		var (
			value string
			err   error
		)
		if pos < len(line) && line[pos] == '"' {
			value, pos, err = scanQuoted(line, pos)
		} else {
			value, pos, err = scanUnquoted(line, pos)
		}
		if err != nil {
			return nil, &Error{Kind: KindMalformedRow, Text: line, Err: err}
		}
		fields = append(fields, value)

		pos = skipSpace(line, pos)
		if pos >= len(line) {
			return fields, nil
		}
		if line[pos] != ',' {
			return nil, &Error{Kind: KindMalformedRow, Text: line, Err: errTextAfterQuote}
		}
		pos++

		if strings.TrimSpace(line[pos:]) == "" {
			return append(fields, ""), nil
		}
	}
}

// scanQuoted reads a quoted field starting at the opening quote and returns
// its unescaped value and the position just past the closing quote.
func scanQuoted(line string, start int) (string, int, error) {
	var b strings.Builder
	for i := start + 1; i < len(line); i++ {
		switch c := line[i]; c {
		case '\\':
			if i+1 >= len(line) {
				return "", 0, errUnterminatedQuote
			}
			// Only \" is unescaped; other pairs are kept as written.
			if line[i+1] != '"' {
				b.WriteByte('\\')
			}
			b.WriteByte(line[i+1])
			i++
		case '"':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, errUnterminatedQuote
}

// scanUnquoted reads up to the next comma and returns the trimmed value.
func scanUnquoted(line string, start int) (string, int, error) {
	end := start
	for end < len(line) && line[end] != ',' {
		if line[end] == '"' || line[end] == '\\' {
			return "", 0, errBareQuote
		}
		end++
	}
	return strings.TrimSpace(line[start:end]), end, nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

// SplitLines splits text into lines, accepting \n and \r\n endings.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	// A final newline does not start another line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// SplitRows splits text into untokenized rows numbered from 1.
func SplitRows(text string) []Row {
	lines := SplitLines(text)
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = TextRow(i+1, line)
	}
	return rows
}

// TokenizeText tokenizes every line of text. The first malformed line stops
// processing and is reported with its 1-based line number.
func TokenizeText(text string) ([]Row, error) {
	rows := SplitRows(text)
	for i := range rows {
		if err := rows[i].Parse(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
