package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
)

// DefaultExportName is the export the generated module assigns.
const DefaultExportName = "BattlePokedex"

var (
	// scalarBlockRegex matches a bracket block that ends a line, holds no
	// nested brackets and closes at an indentation of two or more tabs, i.e.
	// an attribute value inside an entity record.
	scalarBlockRegex = regexp.MustCompile(`([\[{])\n\t*([^\[\]{}]*?)\n\t\t+([\]}])`)

	// entryBreakRegex matches the line break between two block entries.
	entryBreakRegex = regexp.MustCompile(`,\n\t*`)

	exportNameRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// ValidExportName reports whether name can follow "exports." as a plain
// identifier.
func ValidExportName(name string) bool {
	return exportNameRegex.MatchString(name)
}

// Serialize writes c as a single assignment statement:
//
//	exports.BattlePokedex = {
//		"bulbasaur": {
//			"inherit": true,
//			"types": ["Grass", "Poison"],
//			"baseStats": {"hp": 45, "atk": 49, "def": 49, "spa": 65, "spd": 65, "spe": 45}
//		}
//	};
func Serialize(w io.Writer, exportName string, c *Collection) error {
	out, err := Render(exportName, c)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Render returns the serialized form of c.
func Render(exportName string, c *Collection) ([]byte, error) {
	if exportName == "" {
		exportName = DefaultExportName
	}
	if !ValidExportName(exportName) {
		return nil, fmt.Errorf("invalid export name %q", exportName)
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}

	var out bytes.Buffer
	out.Grow(body.Len() + len(exportName) + 16)
	out.WriteString("exports.")
	out.WriteString(exportName)
	out.WriteString(" = ")
	out.Write(CompactBrackets(bytes.TrimRight(body.Bytes(), "\n")))
	out.WriteString(";\n")
	return out.Bytes(), nil
}

// CompactBrackets flattens every multi-line attribute block that holds only
// scalars onto one line, joining entries with ", ". Blocks containing nested
// brackets, entity records and the collection itself keep their layout.
func CompactBrackets(src []byte) []byte {
	return scalarBlockRegex.ReplaceAllFunc(src, func(m []byte) []byte {
		parts := scalarBlockRegex.FindSubmatch(m)
		inner := entryBreakRegex.ReplaceAll(parts[2], []byte(", "))

		out := make([]byte, 0, len(inner)+2)
		out = append(out, parts[1]...)
		out = append(out, inner...)
		out = append(out, parts[3]...)
		return out
	})
}
