package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var errNoHeader = errors.New("no header row")

// ContextCheckInterval is how often (in rows) to check for context cancellation.
var ContextCheckInterval = 100

// Builder turns tokenized rows into a keyed collection of entity records.
type Builder struct {
	Registry   *Registry
	Aliases    *AliasTable
	Shape      Shape
	Duplicates DuplicatePolicy
	Logger     *slog.Logger
}

// BuildStats summarizes a build.
type BuildStats struct {
	Rows         int      // Data rows processed (blank lines excluded)
	Entries      int      // Distinct entity keys written
	Overwritten  []string // Keys replaced by a later row
	Unrecognized []string // Header cells ignored
}

// Build resolves the header from the first non-blank row, then tokenizes and
// builds one record per data row. Any error aborts the whole build. Text rows
// are parsed in place.
func (b *Builder) Build(ctx context.Context, rows []Row) (*Collection, BuildStats, error) {
	var stats BuildStats
	logger := b.logger()

	headerAt, hdr, err := b.resolveHeader(rows)
	if err != nil {
		return nil, stats, err
	}
	stats.Unrecognized = hdr.Unrecognized
	for _, name := range hdr.Unrecognized {
		logger.Warn("unrecognized header ignored",
			"header", name,
			"schema", b.Registry.Name(),
			"code", kindCodes[KindUnrecognizedHeader],
		)
	}

	out := NewCollection()
	for i := headerAt + 1; i < len(rows); i++ {
		row := &rows[i]
		if (i-headerAt-1)%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, fmt.Errorf("operation cancelled at line %d: %w", row.Line, err)
			}
		}
		if err := row.Parse(); err != nil {
			return nil, stats, err
		}
		if row.Blank() {
			continue
		}
		stats.Rows++

		key, rec, err := b.BuildEntry(*row, hdr.Index)
		if err != nil {
			return nil, stats, err
		}

		if _, exists := out.Get(key); exists {
			if b.Duplicates == DuplicateReject {
				return nil, stats, &Error{Kind: KindDuplicateEntity, Line: row.Line, Text: key}
			}
			stats.Overwritten = append(stats.Overwritten, key)
			logger.Warn("duplicate species overwritten",
				"key", key,
				"line", row.Line,
				"code", kindCodes[KindDuplicateEntity],
			)
		}
		out.Put(key, rec)
	}

	stats.Entries = out.Len()
	return out, stats, nil
}

// BuildEntry builds the record for a single data row and returns it with its
// canonical key. Attributes follow the column order of idx.
//
// Standalone records skip empty cells. Legacy records run every present cell
// through its parser, so an empty number becomes NaN and an empty list [].
// Columns missing from a short row are skipped in both shapes.
func (b *Builder) BuildEntry(row Row, idx HeaderIndex) (string, *Record, error) {
	species := idx.Cell(row.Fields, SpeciesHeader)
	key := NormalizeID(b.Aliases.Resolve(species))
	if key == "" {
		return "", nil, &Error{
			Kind: KindMissingSpeciesValue,
			Line: row.Line,
			Text: strings.Join(row.Fields, ","),
		}
	}

	rec := NewRecord(len(idx) + 1)
	legacy := b.Shape != ShapeStandalone
	if legacy {
		rec.Set("inherit", true)
	}

	for _, header := range idx.Headers() {
		d, ok := b.Registry.Get(header)
		if !ok || (legacy && header == SpeciesHeader) {
			continue
		}
		raw, present := idx.Lookup(row.Fields, header)
		if !present || (raw == "" && !legacy) {
			continue
		}
		rec.Set(d.Attribute, d.Parse(raw))
	}

	return key, rec, nil
}

// resolveHeader resolves the first non-blank row against the registry and
// returns its position in rows. Only the lines up to the header are parsed.
func (b *Builder) resolveHeader(rows []Row) (int, HeaderResult, error) {
	headerAt := -1
	for i := range rows {
		if err := rows[i].Parse(); err != nil {
			return -1, HeaderResult{}, err
		}
		if !rows[i].Blank() {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return -1, HeaderResult{}, &Error{Kind: KindMissingMandatoryHeader, Text: SpeciesHeader, Err: errNoHeader}
	}

	header := rows[headerAt]
	hdr, err := ResolveHeaders(header.Fields, b.Registry)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Line = header.Line
		}
		return -1, HeaderResult{}, err
	}
	return headerAt, hdr, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
