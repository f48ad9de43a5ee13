package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSectionType(t *testing.T) {
	cases := map[string]SectionType{
		"general": SectionTypeGeneral,
		"SSP":     SectionTypeSSP,
		" mobile": SectionTypeMobile,
		"1":       SectionTypeSSP,
	}
	for in, want := range cases {
		got, err := ParseSectionType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseSectionType("portal")
	require.Error(t, err)
}

func TestSectionIsInWorkplace(t *testing.T) {
	s := Section{ID: "s1", Workplaces: []string{"w1", "w2"}}
	require.True(t, s.IsInWorkplace("w2"))
	require.False(t, s.IsInWorkplace("w3"))
	require.False(t, Section{}.IsInWorkplace("w1"))
}

func TestWorkplaceGetSectionIDsReturnsCopy(t *testing.T) {
	w := Workplace{SectionIDs: []string{"a", "b"}}
	ids := w.GetSectionIDs()
	ids[0] = "z"
	require.Equal(t, []string{"a", "b"}, w.SectionIDs)
}

func TestWorkplaceAcceptsType(t *testing.T) {
	w := Workplace{Type: WorkplaceTypeSSP}
	require.True(t, w.AcceptsType(SectionTypeSSP))
	require.False(t, w.AcceptsType(SectionTypeGeneral))
}

func TestAllowedSectionIDsMissingEntry(t *testing.T) {
	s := AllowedWorkplaceStructure{
		"w1": {WorkplaceID: "w1", AllowedSectionIDs: []string{"a"}},
		"w2": {WorkplaceID: "w2"},
	}
	require.Equal(t, []string{"a"}, s.AllowedSectionIDs("w1"))
	require.NotNil(t, s.AllowedSectionIDs("w2"))
	require.Empty(t, s.AllowedSectionIDs("w2"))
	require.Empty(t, s.AllowedSectionIDs("missing"))
	require.Empty(t, AllowedWorkplaceStructure(nil).AllowedSectionIDs("w1"))
}

func TestSectionJSONEmptyWorkplaces(t *testing.T) {
	raw, err := json.Marshal(Section{ID: "s1"})
	require.NoError(t, err)
	require.Contains(t, string(raw), `"workplaces":[]`)

	raw, err = json.Marshal([]Section{{ID: "s2", Workplaces: []string{"w1"}}})
	require.NoError(t, err)
	require.Contains(t, string(raw), `"workplaces":["w1"]`)

	var back Section
	require.NoError(t, json.Unmarshal(raw[1:len(raw)-1], &back))
	require.Equal(t, []string{"w1"}, back.Workplaces)
}
