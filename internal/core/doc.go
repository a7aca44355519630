// Package core provides the conversion pipeline from a species dataset to a
// JavaScript data module.
//
// This package contains all domain logic independent of any UI or transport
// layer. It is used by the CLI, the HTTP API and tests without modification.
//
// # Pipeline
//
// A conversion runs in five stages, each usable on its own:
//
//  1. [ReadRows] reads CSV text (or the first sheet of a workbook), strips a
//     byte order mark, replaces invalid UTF-8 and applies NFC normalization
//  2. [Tokenize] splits each line into fields, honouring "quoted, fields"
//     with backslash-escaped quotes; CSV rows are tokenized on demand by
//     [Row.Parse], so header errors surface before malformed data rows
//  3. [ResolveHeaders] maps the header row onto a [Registry] of column
//     descriptors; unknown columns are ignored with a warning
//  4. [Builder] turns each data row into a [Record] keyed by the normalized
//     species identifier, resolving aliases through an [AliasTable];
//     attributes follow the column order of the header row
//  5. [Render] writes the [Collection] as "exports.Name = {...};"
//
// [Converter] wires the stages together for one schema and record shape.
//
// # Schemas
//
// A [Registry] is an immutable, ordered list of [Descriptor] values. Each
// descriptor names a normalized header, the output attribute and the
// [ParseFunc] that converts the raw cell:
//
//	core.NewRegistry("legacy",
//	    core.Descriptor{Header: "num", Parse: core.Integer},
//	    core.Descriptor{Header: "species", Parse: core.SpeciesName(aliases)},
//	    core.Descriptor{Header: "basestats", Attribute: "baseStats", Parse: core.StatBlock},
//	)
//
// The concrete schemas and the built-in alias data live in package tables.
//
// # Error Handling
//
// Failures are reported as [*Error] values carrying a [Kind], the input line
// and the offending text. Technical errors are mapped to user-friendly
// messages using [MapError]:
//
//   - FILE001-FILE003: Input and output file errors
//   - CSV001: Malformed rows
//   - HDR001-HDR003: Header problems (HDR001 is only a warning)
//   - ROW001-ROW002: Row problems (missing species, duplicate species)
package core
