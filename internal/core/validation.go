package core

// validation.go resolves a file's header row against a schema registry.
//
// Header cells are normalized to identifiers, so "Base Stats", "baseStats"
// and "base_stats" all resolve to the "basestats" descriptor. Resolution
// happens before any data row is read:
//  1. Unrecognized headers are collected and reported as warnings
//  2. A recognized header appearing twice is fatal
//  3. A missing species header is fatal
//
// Record attributes follow the column order of the resolved header.

import "sort"

// HeaderResult is the outcome of resolving a header row.
type HeaderResult struct {
	Index        HeaderIndex
	Unrecognized []string // Raw header cells not in the registry
}

// ResolveHeaders maps recognized header identifiers to column positions.
func ResolveHeaders(header []string, reg *Registry) (HeaderResult, error) {
	res := HeaderResult{Index: make(HeaderIndex, len(header))}

	for i, cell := range header {
		raw := CleanCell(cell)
		key := NormalizeID(raw)
		if !reg.Has(key) {
			if raw != "" {
				res.Unrecognized = append(res.Unrecognized, raw)
			}
			continue
		}
		if _, dup := res.Index[key]; dup {
			return HeaderResult{}, &Error{Kind: KindDuplicateHeader, Text: raw}
		}
		res.Index[key] = i
	}

	if _, ok := res.Index[SpeciesHeader]; !ok {
		return HeaderResult{}, &Error{Kind: KindMissingMandatoryHeader, Text: SpeciesHeader}
	}

	return res, nil
}

// Cell returns the cleaned value of the column mapped to header, or "" when
// the header is absent or the row is short.
func (idx HeaderIndex) Cell(row []string, header string) string {
	v, _ := idx.Lookup(row, header)
	return v
}

// Lookup is like Cell but also reports whether the row has the column at all.
func (idx HeaderIndex) Lookup(row []string, header string) (string, bool) {
	pos, ok := idx[header]
	if !ok || pos >= len(row) {
		return "", false
	}
	return CleanCell(row[pos]), true
}

// Headers returns the recognized header identifiers in column order.
func (idx HeaderIndex) Headers() []string {
	out := make([]string, 0, len(idx))
	for h := range idx {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return idx[out[i]] < idx[out[j]] })
	return out
}
