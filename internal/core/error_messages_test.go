package core

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "input not found",
			err:         inputError("dex.csv", fs.ErrNotExist),
			wantCode:    "FILE001",
			wantMessage: "The input file does not exist",
		},
		{
			name:        "limiter busy",
			err:         fmt.Errorf("acquire: %w", ErrTooManyConversions),
			wantCode:    "RATE001",
			wantMessage: "The server is busy with other conversions",
		},
		{
			name:        "malformed row",
			err:         &Error{Kind: KindMalformedRow, Line: 3},
			wantCode:    "CSV001",
			wantMessage: "A line is not valid CSV",
		},
		{
			name:        "wrapped duplicate header",
			err:         fmt.Errorf("convert: %w", &Error{Kind: KindDuplicateHeader, Text: "num"}),
			wantCode:    "HDR002",
			wantMessage: "A recognized column appears twice",
		},
		{
			name:        "missing species header",
			err:         ErrMissingMandatoryHeader,
			wantCode:    "HDR003",
			wantMessage: "The species column is required",
		},
		{
			name:        "duplicate entity",
			err:         &Error{Kind: KindDuplicateEntity, Text: "bulbasaur"},
			wantCode:    "ROW002",
			wantMessage: "Two rows resolve to the same species",
		},
		{
			name:        "unclassified file too large",
			err:         fmt.Errorf("read body: %w", ErrFileTooLarge),
			wantCode:    "FILE002",
			wantMessage: "The input file could not be read",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("open x: PERMISSION DENIED"),
			wantCode:    "FILE002",
			wantMessage: "The input file could not be read",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestMapError_CodesMatchKinds(t *testing.T) {
	for kind, msg := range kindMessages {
		if got := (&Error{Kind: kind}).Code(); got != msg.Code {
			t.Errorf("%s: Code() = %q, message code = %q", kind, got, msg.Code)
		}
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(&Error{Kind: KindMissingSpeciesValue, Line: 7})

	expected := "A data row has an empty species cell (Code: ROW001). Fill in the species name on the reported line"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "classified error is user facing",
			err:  &Error{Kind: KindOutputUnwritable},
			want: true,
		},
		{
			name: "known pattern is user facing",
			err:  errors.New("open pokedex.csv: no such file or directory"),
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
