package core

// # Error Codes Reference
//
// User-facing messages carry a code for support reference. Codes follow the
// error kind of a *Error; errors that are not classified fall back to
// pattern matching on the error text, then to ERR000.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Input not found: The input file does not exist
//	          Action: Check the input path
//
//	FILE002 - Input unreadable: The input file could not be read
//	          Action: Check file permissions, size and format
//	          Patterns: "file too large", "permission denied"
//
//	FILE003 - Output unwritable: The output file could not be written
//	          Action: Check that the output directory exists and is writable
//
// # CSV Errors (CSV001-CSV099)
//
//	CSV001 - Malformed row: A line is not valid CSV
//	         Action: Fix quoting on the reported line
//
// # Header Errors (HDR001-HDR099)
//
//	HDR001 - Unrecognized header: Column is not part of the schema (warning)
//	         Action: Rename or remove the column
//
//	HDR002 - Duplicate header: A recognized column appears twice
//	         Action: Remove the repeated column
//
//	HDR003 - Missing species header: The species column is required
//	         Action: Add a "species" column to the header row
//
// # Row Errors (ROW001-ROW099)
//
//	ROW001 - Missing species value: A data row has an empty species cell
//	         Action: Fill in the species name on the reported line
//
//	ROW002 - Duplicate entity: Two rows resolve to the same species
//	         Action: Remove one of the rows or run without --strict
//
// # Capacity Errors (RATE001-RATE099)
//
//	RATE001 - Server busy: Too many conversions are running
//	          Action: Retry the request shortly
//	          Patterns: "too many concurrent conversions"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the log output for details

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var kindMessages = map[Kind]UserMessage{
	KindInputNotFound: {
		Message: "The input file does not exist",
		Action:  "Check the input path",
		Code:    "FILE001",
	},
	KindInputUnreadable: {
		Message: "The input file could not be read",
		Action:  "Check file permissions, size and format",
		Code:    "FILE002",
	},
	KindOutputUnwritable: {
		Message: "The output file could not be written",
		Action:  "Check that the output directory exists and is writable",
		Code:    "FILE003",
	},
	KindMalformedRow: {
		Message: "A line is not valid CSV",
		Action:  "Fix quoting on the reported line",
		Code:    "CSV001",
	},
	KindUnrecognizedHeader: {
		Message: "Column is not part of the schema",
		Action:  "Rename or remove the column",
		Code:    "HDR001",
	},
	KindDuplicateHeader: {
		Message: "A recognized column appears twice",
		Action:  "Remove the repeated column",
		Code:    "HDR002",
	},
	KindMissingMandatoryHeader: {
		Message: "The species column is required",
		Action:  `Add a "species" column to the header row`,
		Code:    "HDR003",
	},
	KindMissingSpeciesValue: {
		Message: "A data row has an empty species cell",
		Action:  "Fill in the species name on the reported line",
		Code:    "ROW001",
	},
	KindDuplicateEntity: {
		Message: "Two rows resolve to the same species",
		Action:  "Remove one of the rows or run without --strict",
		Code:    "ROW002",
	},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns catch errors that were not classified at the source.
// The first matching pattern wins.
var errorPatterns = []errorPattern{
	{pattern: "file too large", msg: kindMessages[KindInputUnreadable]},
	{pattern: "no such file", msg: kindMessages[KindInputNotFound]},
	{pattern: "permission denied", msg: kindMessages[KindInputUnreadable]},
	{pattern: "too many concurrent conversions", msg: busyMessage},
}

var busyMessage = UserMessage{
	Message: "The server is busy with other conversions",
	Action:  "Retry the request shortly",
	Code:    "RATE001",
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	if msg, ok := kindMessages[KindOf(err)]; ok {
		return msg
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error maps to a specific message rather than the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
