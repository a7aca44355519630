package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies conversion failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindInputNotFound
	KindInputUnreadable
	KindMalformedRow
	KindUnrecognizedHeader
	KindDuplicateHeader
	KindMissingMandatoryHeader
	KindMissingSpeciesValue
	KindDuplicateEntity
	KindOutputUnwritable
)

var kindNames = map[Kind]string{
	KindUnknown:                "unknown error",
	KindInputNotFound:          "input not found",
	KindInputUnreadable:        "input unreadable",
	KindMalformedRow:           "malformed row",
	KindUnrecognizedHeader:     "unrecognized header",
	KindDuplicateHeader:        "duplicate header",
	KindMissingMandatoryHeader: "missing mandatory header",
	KindMissingSpeciesValue:    "missing species value",
	KindDuplicateEntity:        "duplicate entity",
	KindOutputUnwritable:       "output unwritable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Fatal reports whether errors of this kind abort a run.
func (k Kind) Fatal() bool {
	return k != KindUnrecognizedHeader
}

// Sentinels for errors.Is checks.
var (
	ErrInputNotFound          = &Error{Kind: KindInputNotFound}
	ErrInputUnreadable        = &Error{Kind: KindInputUnreadable}
	ErrMalformedRow           = &Error{Kind: KindMalformedRow}
	ErrUnrecognizedHeader     = &Error{Kind: KindUnrecognizedHeader}
	ErrDuplicateHeader        = &Error{Kind: KindDuplicateHeader}
	ErrMissingMandatoryHeader = &Error{Kind: KindMissingMandatoryHeader}
	ErrMissingSpeciesValue    = &Error{Kind: KindMissingSpeciesValue}
	ErrDuplicateEntity        = &Error{Kind: KindDuplicateEntity}
	ErrOutputUnwritable       = &Error{Kind: KindOutputUnwritable}
)

// Error is a classified conversion error.
type Error struct {
	Kind Kind
	Path string // File involved, if any
	Line int    // 1-based line number, 0 if not row-specific
	Text string // Offending text (line content or header name)
	Err  error  // Underlying cause
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s: line %d", msg, e.Line)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Code returns the support reference code for the error kind.
func (e *Error) Code() string {
	return kindCodes[e.Kind]
}

var kindCodes = map[Kind]string{
	KindUnknown:                "ERR000",
	KindInputNotFound:          "FILE001",
	KindInputUnreadable:        "FILE002",
	KindOutputUnwritable:       "FILE003",
	KindMalformedRow:           "CSV001",
	KindUnrecognizedHeader:     "HDR001",
	KindDuplicateHeader:        "HDR002",
	KindMissingMandatoryHeader: "HDR003",
	KindMissingSpeciesValue:    "ROW001",
	KindDuplicateEntity:        "ROW002",
}

// KindOf returns the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// inputError classifies a failure to open or read path.
func inputError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: KindInputNotFound, Path: path, Err: err}
	}
	return &Error{Kind: KindInputUnreadable, Path: path, Err: err}
}

// outputError classifies a failure to write path.
func outputError(path string, err error) error {
	return &Error{Kind: KindOutputUnwritable, Path: path, Err: err}
}
