package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/dexconv/internal/logging"
)

// PreviewSummary contains the summary counts for a conversion preview.
type PreviewSummary struct {
	TotalRows    int  `json:"totalRows"`
	Entries      int  `json:"entries"`
	Duplicates   int  `json:"duplicates"`
	Unrecognized int  `json:"unrecognized"`
	Valid        bool `json:"valid"`
}

// EntryPreview is one built record for display.
type EntryPreview struct {
	LineNumber int     `json:"lineNumber"`
	Key        string  `json:"key"`
	Record     *Record `json:"record"`
}

// DuplicatePreview lists the lines that resolve to the same species key.
type DuplicatePreview struct {
	Key         string `json:"key"`
	LineNumbers []int  `json:"lineNumbers"`
}

// ErrorPreview describes the failure that would stop a real conversion.
type ErrorPreview struct {
	LineNumber int    `json:"lineNumber,omitempty"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Text       string `json:"text,omitempty"`
}

// PreviewResponse is the complete result of a dry run.
type PreviewResponse struct {
	Schema              string             `json:"schema"`
	Shape               Shape              `json:"shape"`
	Summary             PreviewSummary     `json:"summary"`
	Headers             []string           `json:"headers"`
	UnrecognizedHeaders []string           `json:"unrecognizedHeaders"`
	EntrySamples        []EntryPreview     `json:"entrySamples"`
	DuplicateSamples    []DuplicatePreview `json:"duplicateSamples"`
	Error               *ErrorPreview      `json:"error,omitempty"`
	ProcessingTimeMs    int64              `json:"processingTimeMs"`
}

// Sample limits
const (
	maxEntrySamples     = 10
	maxDuplicateSamples = 10
)

// Preview performs a read-only dry run of a conversion. Row and header
// failures are reported in the response instead of being returned, so a
// client sees everything up to the first fatal problem. Only input that
// cannot be read at all returns an error.
func (c *Converter) Preview(ctx context.Context, r io.Reader, format Format) (*PreviewResponse, error) {
	start := time.Now()
	resp := &PreviewResponse{
		Schema:              c.registry.Name(),
		Shape:               c.opts.Shape,
		Headers:             []string{},
		UnrecognizedHeaders: []string{},
		EntrySamples:        []EntryPreview{},
		DuplicateSamples:    []DuplicatePreview{},
	}
	defer func() { resp.ProcessingTimeMs = time.Since(start).Milliseconds() }()

	rows, err := ReadRows(r, format, c.opts.MaxFileSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{Registry: c.registry, Aliases: c.aliases, Shape: c.opts.Shape, Duplicates: c.opts.Duplicates}
	headerAt, hdr, err := b.resolveHeader(rows)
	if err != nil {
		resp.Error = errorPreview(err)
		return resp, nil
	}
	resp.Headers = hdr.Index.Headers()
	if hdr.Unrecognized != nil {
		resp.UnrecognizedHeaders = hdr.Unrecognized
	}
	resp.Summary.Unrecognized = len(hdr.Unrecognized)

	lines := make(map[string][]int)
	var order []string
	for i := headerAt + 1; i < len(rows); i++ {
		row := &rows[i]
		if (i-headerAt-1)%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("operation cancelled at line %d: %w", row.Line, err)
			}
		}
		if err := row.Parse(); err != nil {
			resp.Error = errorPreview(err)
			break
		}
		if row.Blank() {
			continue
		}
		resp.Summary.TotalRows++

		key, rec, err := b.BuildEntry(*row, hdr.Index)
		if err != nil {
			resp.Error = errorPreview(err)
			break
		}

		_, seen := lines[key]
		lines[key] = append(lines[key], row.Line)
		if seen && c.opts.Duplicates == DuplicateReject {
			resp.Error = errorPreview(&Error{Kind: KindDuplicateEntity, Line: row.Line, Text: key})
			break
		}
		if !seen {
			order = append(order, key)
			if len(resp.EntrySamples) < maxEntrySamples {
				resp.EntrySamples = append(resp.EntrySamples, EntryPreview{LineNumber: row.Line, Key: key, Record: rec})
			}
			continue
		}
		// The later row wins, as in a real run.
		for j := range resp.EntrySamples {
			if resp.EntrySamples[j].Key == key {
				resp.EntrySamples[j] = EntryPreview{LineNumber: row.Line, Key: key, Record: rec}
			}
		}
	}

	resp.Summary.Entries = len(order)
	for _, key := range order {
		if n := len(lines[key]); n > 1 {
			resp.Summary.Duplicates++
			if len(resp.DuplicateSamples) < maxDuplicateSamples {
				resp.DuplicateSamples = append(resp.DuplicateSamples, DuplicatePreview{Key: key, LineNumbers: lines[key]})
			}
		}
	}
	resp.Summary.Valid = resp.Error == nil

	logging.WithFields(ctx, "schema", c.registry.Name()).Debug("preview complete",
		"rows", resp.Summary.TotalRows,
		"entries", resp.Summary.Entries,
		"valid", resp.Summary.Valid,
	)
	return resp, nil
}

func errorPreview(err error) *ErrorPreview {
	msg := MapError(err)
	p := &ErrorPreview{Code: msg.Code, Message: msg.Message}
	var e *Error
	if errors.As(err, &e) {
		p.LineNumber = e.Line
		p.Text = e.Text
	}
	return p
}
