package core

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// AliasTable maps normalized shorthand identifiers to canonical display
// names. It is read-only once constructed.
type AliasTable struct {
	entries map[string]string
}

// NewAliasTable builds a table from one or more source maps. Keys are
// normalized with NormalizeID; later sources override earlier ones.
func NewAliasTable(sources ...map[string]string) *AliasTable {
	size := 0
	for _, src := range sources {
		size += len(src)
	}

	entries := make(map[string]string, size)
	for _, src := range sources {
		for k, v := range src {
			if id := NormalizeID(k); id != "" {
				entries[id] = v
			}
		}
	}
	return &AliasTable{entries: entries}
}

// Resolve returns the canonical display name for token, or token unchanged
// (not normalized) when it has no alias.
func (t *AliasTable) Resolve(token string) string {
	if t == nil {
		return token
	}
	if canonical, ok := t.entries[NormalizeID(token)]; ok {
		return canonical
	}
	return token
}

// Lookup reports the canonical name for an already normalized identifier.
func (t *AliasTable) Lookup(id string) (string, bool) {
	if t == nil {
		return "", false
	}
	canonical, ok := t.entries[id]
	return canonical, ok
}

// Len returns the number of aliases.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns all alias identifiers, sorted.
func (t *AliasTable) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadAliasFile reads extra aliases from a YAML document holding a flat
// mapping of shorthand to canonical name:
//
//	megazard: Charizard-Mega-X
//	zardy: Charizard
func LoadAliasFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, inputError(path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: KindInputUnreadable, Path: path, Err: fmt.Errorf("parse alias file: %w", err)}
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		id := NormalizeID(k)
		if id == "" || v == "" {
			continue
		}
		out[id] = v
	}
	return out, nil
}
