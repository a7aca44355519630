package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

// ParseFunc converts a raw cell value into a typed attribute value.
// Returned values are float64 (NaN allowed), string, bool, []string or *Record.
type ParseFunc func(raw string) any

// Descriptor defines how a single recognized CSV column is turned into an
// attribute of the output record.
type Descriptor struct {
	Header    string    // Normalized header identifier: "basestats"
	Attribute string    // Output attribute name: "baseStats"
	Parse     ParseFunc // Value transform
}

// HeaderIndex maps recognized header identifiers to their position in a row.
type HeaderIndex map[string]int

// Row is one line of input. CSV lines stay untokenized until Parse runs, so
// a malformed line is only reported once every line before it was handled.
type Row struct {
	Line   int      // 1-based line (or sheet row) number
	Fields []string // Raw field values, positionally aligned to the header

	text    string
	pending bool
}

// TextRow returns a row holding untokenized line text.
func TextRow(line int, text string) Row {
	return Row{Line: line, text: text, pending: true}
}

// Parse tokenizes a text row in place. Rows created with Fields are left
// untouched. A malformed line yields a KindMalformedRow error carrying the
// row's line number.
func (r *Row) Parse() error {
	if !r.pending {
		return nil
	}
	fields, err := Tokenize(r.text)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Line = r.Line
		}
		return err
	}
	r.Fields, r.text, r.pending = fields, "", false
	return nil
}

// Blank reports whether every field of the row is empty after trimming.
// Text rows must be parsed first.
func (r Row) Blank() bool {
	for _, f := range r.Fields {
		if CleanCell(f) != "" {
			return false
		}
	}
	return true
}

// Shape selects how entity records are laid out.
type Shape string

const (
	// ShapeLegacy emits patch records that inherit from a base entry.
	ShapeLegacy Shape = "legacy"
	// ShapeStandalone emits complete records carrying their species name.
	ShapeStandalone Shape = "standalone"
)

// DuplicatePolicy decides what happens when two rows resolve to the same key.
type DuplicatePolicy string

const (
	DuplicateOverwrite DuplicatePolicy = "overwrite"
	DuplicateReject    DuplicatePolicy = "reject"
)

// field is a single ordered attribute.
type field struct {
	name  string
	value any
}

// Record is an ordered attribute set. Attribute order is insertion order,
// which is also the order the serializer emits.
type Record struct {
	fields []field
}

// NewRecord returns an empty record with room for n attributes.
func NewRecord(n int) *Record {
	return &Record{fields: make([]field, 0, n)}
}

// Set adds or replaces an attribute. Replacing keeps the original position.
func (r *Record) Set(name string, value any) {
	for i := range r.fields {
		if r.fields[i].name == name {
			r.fields[i].value = value
			return
		}
	}
	r.fields = append(r.fields, field{name: name, value: value})
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	for _, f := range r.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// Keys returns attribute names in order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.name
	}
	return keys
}

// Len returns the number of attributes.
func (r *Record) Len() int {
	return len(r.fields)
}

// MarshalJSON writes the record as an object in attribute order.
// NaN numbers are written as null.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, f.name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, f.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Collection maps canonical entity identifiers to records, preserving the
// order in which keys were first inserted.
type Collection struct {
	keys    []string
	records map[string]*Record
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{records: make(map[string]*Record)}
}

// Put stores rec under key. It reports whether key was already present; an
// existing key keeps its position and its record is replaced.
func (c *Collection) Put(key string, rec *Record) bool {
	_, exists := c.records[key]
	if !exists {
		c.keys = append(c.keys, key)
	}
	c.records[key] = rec
	return exists
}

// Get returns the record stored under key.
func (c *Collection) Get(key string) (*Record, bool) {
	rec, ok := c.records[key]
	return rec, ok
}

// Keys returns entity keys in insertion order.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of entities.
func (c *Collection) Len() int {
	return len(c.keys)
}

// MarshalJSON writes the collection as an object in insertion order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, c.records[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONValue encodes a single value without HTML escaping.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			buf.WriteString("null")
			return nil
		}
	case *Record:
		b, err := val.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encoder always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
