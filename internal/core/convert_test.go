package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"45", 45},
		{"  45", 45},
		{"-3", -3},
		{"+7", 7},
		{"45 (approx)", 45},
		{"12.9", 12},
		{"0045", 45},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.input))
		})
	}
}

func TestParseInt_NaN(t *testing.T) {
	for _, input := range []string{"", "abc", "-", "x45", "  "} {
		if got := ParseInt(input); !math.IsNaN(got) {
			t.Errorf("ParseInt(%q) = %v, want NaN", input, got)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"17.5", 17.5},
		{"17,5", 17.5},
		{" 0.7 ", 0.7},
		{".5", 0.5},
		{"6.9 kg", 6.9},
		{"1e3", 1000},
		{"10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDecimal(tt.input))
		})
	}

	assert.True(t, math.IsNaN(ParseDecimal("tall")))
	assert.Equal(t, ParseDecimal("17.5"), ParseDecimal("17,5"))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Grass/Poison", []string{"Grass", "Poison"}},
		{"Grass, Poison", []string{"Grass", "Poison"}},
		{"Fire", []string{"Fire"}},
		{"a//b/", []string{"a", "b"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitList(tt.input), "SplitList(%q)", tt.input)
	}
}

func TestNameListAndIDList(t *testing.T) {
	assert.Equal(t, []string{"Grass", "Poison"}, NameList("grass/POISON"))
	assert.Equal(t, []string{"Monster", "Water 1"}, NameList("monster, water 1"))
	assert.Equal(t, []string{"ivysaur", "mrmime"}, IDList("Ivysaur/Mr. Mime"))
	assert.Equal(t, []string{}, IDList("./-"))
}

func TestGenderLetter(t *testing.T) {
	assert.Equal(t, "M", GenderLetter("m"))
	assert.Equal(t, "N", GenderLetter(" n "))
	assert.Equal(t, "", GenderLetter("?"))
}

func TestStatBlock(t *testing.T) {
	rec, ok := StatBlock("100/50/50/100/50/70").(*Record)
	require.True(t, ok)

	assert.Equal(t, StatNames, rec.Keys())
	want := map[string]float64{"hp": 100, "atk": 50, "def": 50, "spa": 100, "spd": 50, "spe": 70}
	for name, v := range want {
		got, _ := rec.Get(name)
		assert.Equal(t, v, got, name)
	}
}

func TestStatBlock_Short(t *testing.T) {
	rec := StatBlock("45/49").(*Record)

	assert.Equal(t, 6, rec.Len())
	spe, _ := rec.Get("spe")
	assert.True(t, math.IsNaN(spe.(float64)))

	b, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"hp":45,"atk":49,"def":null,"spa":null,"spd":null,"spe":null}`, string(b))
}

func TestAbilitySet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKeys []string
		want     map[string]string
	}{
		{
			name:     "hidden only",
			input:    "overgrow/-/chlorophyll",
			wantKeys: []string{"0", "H"},
			want:     map[string]string{"0": "Overgrow", "H": "Chlorophyll"},
		},
		{
			name:     "all slots",
			input:    "keen eye/tangled-feet/big pecks",
			wantKeys: []string{"0", "1", "H"},
			want:     map[string]string{"0": "Keen Eye", "1": "Tangled Feet", "H": "Big Pecks"},
		},
		{
			name:     "single",
			input:    "levitate",
			wantKeys: []string{"0"},
			want:     map[string]string{"0": "Levitate"},
		},
		{
			name:     "empty first slot kept",
			input:    "-/static",
			wantKeys: []string{"0", "1"},
			want:     map[string]string{"0": "", "1": "Static"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := AbilitySet(tt.input).(*Record)
			assert.Equal(t, tt.wantKeys, rec.Keys())
			for k, v := range tt.want {
				got, ok := rec.Get(k)
				assert.True(t, ok, k)
				assert.Equal(t, v, got, k)
			}
		})
	}
}

func TestGenderRatio(t *testing.T) {
	tests := []struct {
		input string
		m, f  float64
	}{
		{"0.875", 0.875, 0.125},
		{"0.5", 0.5, 0.5},
		{"0,25", 0.25, 0.75},
		{"0.7/0.3", 0.7, 0.3},
		{"1", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rec := GenderRatio(tt.input).(*Record)
			assert.Equal(t, []string{"M", "F"}, rec.Keys())
			m, _ := rec.Get("M")
			f, _ := rec.Get("F")
			assert.Equal(t, tt.m, m)
			assert.Equal(t, tt.f, f)
		})
	}
}

func TestSpeciesDisplayName(t *testing.T) {
	aliases := NewAliasTable(map[string]string{"megagengar": "Gengar-Mega"})

	tests := []struct {
		input string
		want  string
	}{
		{"megagengar", "Gengar-Mega"},
		{"Mega Gengar", "Gengar-Mega"},
		{"bulbasaur", "Bulbasaur"},
		{"tapu koko", "Tapu-Koko"},
		{`="ho-oh"`, "Ho-Oh"},
		{"farfetch'd", "Farfetch'd"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeciesDisplayName(aliases, tt.input))
		})
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple string unchanged", input: "hello", want: "hello"},
		{name: "empty string", input: "", want: ""},
		{name: "surrounded by whitespace", input: "  hello  ", want: "hello"},
		{name: "Excel formula with quotes", input: `="hello"`, want: "hello"},
		{name: "Excel formula number as text", input: `="12345"`, want: "12345"},
		{name: "Excel formula empty", input: `=""`, want: ""},
		{name: "bare equals sign kept", input: "=SUM(A1)", want: "=SUM(A1)"},
		{name: "formula with whitespace", input: ` ="001" `, want: "001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
