package core

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() *Collection {
	stats := StatBlock("45/49/49/65/65/45").(*Record)
	abilities := AbilitySet("overgrow/-/chlorophyll").(*Record)

	bulba := NewRecord(6)
	bulba.Set("inherit", true)
	bulba.Set("num", 1.0)
	bulba.Set("types", []string{"Grass", "Poison"})
	bulba.Set("baseStats", stats)
	bulba.Set("abilities", abilities)
	bulba.Set("heightm", math.NaN())

	missingno := NewRecord(1)
	missingno.Set("inherit", true)

	c := NewCollection()
	c.Put("bulbasaur", bulba)
	c.Put("missingno", missingno)
	return c
}

func TestRender(t *testing.T) {
	out, err := Render("BattlePokedex", sampleCollection())
	require.NoError(t, err)

	want := "exports.BattlePokedex = {\n" +
		"\t\"bulbasaur\": {\n" +
		"\t\t\"inherit\": true,\n" +
		"\t\t\"num\": 1,\n" +
		"\t\t\"types\": [\"Grass\", \"Poison\"],\n" +
		"\t\t\"baseStats\": {\"hp\": 45, \"atk\": 49, \"def\": 49, \"spa\": 65, \"spd\": 65, \"spe\": 45},\n" +
		"\t\t\"abilities\": {\"0\": \"Overgrow\", \"H\": \"Chlorophyll\"},\n" +
		"\t\t\"heightm\": null\n" +
		"\t},\n" +
		"\t\"missingno\": {\n" +
		"\t\t\"inherit\": true\n" +
		"\t}\n" +
		"};\n"
	assert.Equal(t, want, string(out))
}

func TestRender_Empty(t *testing.T) {
	out, err := Render("", NewCollection())
	require.NoError(t, err)
	assert.Equal(t, "exports.BattlePokedex = {};\n", string(out))
}

func TestRender_InvalidExportName(t *testing.T) {
	for _, name := range []string{"1abc", "a-b", "a.b", "x y"} {
		_, err := Render(name, NewCollection())
		assert.Error(t, err, name)
	}
}

func TestValidExportName(t *testing.T) {
	assert.True(t, ValidExportName("BattlePokedex"))
	assert.True(t, ValidExportName("_dex$2"))
	assert.False(t, ValidExportName(""))
	assert.False(t, ValidExportName("9lives"))
}

func TestSerialize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, "Pokedex", sampleCollection()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("exports.Pokedex = {\n")))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n};\n")))
}

func TestCompactBrackets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "scalar list collapses",
			input: "{\n\t\"a\": {\n\t\t\"t\": [\n\t\t\t\"x\",\n\t\t\t\"y\"\n\t\t]\n\t}\n}",
			want:  "{\n\t\"a\": {\n\t\t\"t\": [\"x\", \"y\"]\n\t}\n}",
		},
		{
			name:  "entity record kept",
			input: "{\n\t\"a\": {\n\t\t\"n\": 1,\n\t\t\"m\": 2\n\t}\n}",
			want:  "{\n\t\"a\": {\n\t\t\"n\": 1,\n\t\t\"m\": 2\n\t}\n}",
		},
		{
			name:  "commas inside strings kept",
			input: "{\n\t\"a\": {\n\t\t\"t\": [\n\t\t\t\"x, y\"\n\t\t]\n\t}\n}",
			want:  "{\n\t\"a\": {\n\t\t\"t\": [\"x, y\"]\n\t}\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(CompactBrackets([]byte(tt.input))))
		})
	}
}
