// Package tables holds the static species data: the alias table and the
// column schemas the converter validates against.
package tables

import (
	"fmt"
	"sort"

	"github.com/JonMunkholm/dexconv/internal/core"
)

// Schema version names.
const (
	SchemaLegacy   = "legacy"
	SchemaExtended = "extended"
)

// NewAliasTable builds the alias table from the static data, with extra
// entries (for example from an alias file) taking precedence.
func NewAliasTable(extra map[string]string) *core.AliasTable {
	return core.NewAliasTable(Aliases, extra)
}

// NewSchema builds the registry for a schema version.
func NewSchema(version string, aliases *core.AliasTable) (*core.Registry, error) {
	switch version {
	case SchemaLegacy:
		return core.NewRegistry(SchemaLegacy, legacyDescriptors(aliases)...)
	case SchemaExtended:
		return core.NewRegistry(SchemaExtended, extendedDescriptors(aliases)...)
	default:
		return nil, fmt.Errorf("unknown schema version %q (want %s or %s)", version, SchemaLegacy, SchemaExtended)
	}
}

// Versions lists the known schema versions.
func Versions() []string {
	v := []string{SchemaLegacy, SchemaExtended}
	sort.Strings(v)
	return v
}

// Profile returns the schema version and record shape for a run. Standalone
// output always uses the extended schema; patch output uses the legacy one.
func Profile(standalone bool) (string, core.Shape) {
	if standalone {
		return SchemaExtended, core.ShapeStandalone
	}
	return SchemaLegacy, core.ShapeLegacy
}

// NewConverter builds a converter for the given profile.
func NewConverter(standalone bool, aliases *core.AliasTable, opts core.Options) (*core.Converter, error) {
	version, shape := Profile(standalone)
	reg, err := NewSchema(version, aliases)
	if err != nil {
		return nil, err
	}
	opts.Shape = shape
	return core.NewConverter(reg, aliases, opts), nil
}

func legacyDescriptors(aliases *core.AliasTable) []core.Descriptor {
	return []core.Descriptor{
		{Header: "num", Attribute: "num", Parse: core.Integer},
		{Header: "species", Attribute: "species", Parse: core.SpeciesName(aliases)},
		{Header: "types", Attribute: "types", Parse: core.NameList},
		{Header: "gender", Attribute: "gender", Parse: core.GenderLetter},
		{Header: "genderratio", Attribute: "genderRatio", Parse: core.GenderRatio},
		{Header: "basestats", Attribute: "baseStats", Parse: core.StatBlock},
		{Header: "abilities", Attribute: "abilities", Parse: core.AbilitySet},
		{Header: "heightm", Attribute: "heightm", Parse: core.Decimal},
		{Header: "weightkg", Attribute: "weightkg", Parse: core.Decimal},
		{Header: "color", Attribute: "color", Parse: core.Name},
		{Header: "prevo", Attribute: "prevo", Parse: core.Identifier},
		{Header: "evolevel", Attribute: "evoLevel", Parse: core.Integer},
		{Header: "egggroups", Attribute: "eggGroups", Parse: core.NameList},
	}
}

func extendedDescriptors(aliases *core.AliasTable) []core.Descriptor {
	legacy := legacyDescriptors(aliases)

	// Forme fields follow the species name, as in the dataset itself.
	out := make([]core.Descriptor, 0, len(legacy)+5)
	out = append(out, legacy[:2]...)
	out = append(out,
		core.Descriptor{Header: "basespecies", Attribute: "baseSpecies", Parse: core.SpeciesName(aliases)},
		core.Descriptor{Header: "forme", Attribute: "forme", Parse: core.Name},
		core.Descriptor{Header: "formeletter", Attribute: "formeLetter", Parse: core.Text},
	)
	out = append(out, legacy[2:]...)
	out = append(out,
		core.Descriptor{Header: "evos", Attribute: "evos", Parse: core.IDList},
		core.Descriptor{Header: "otherformes", Attribute: "otherFormes", Parse: core.IDList},
	)
	return out
}
