package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotKing22/BigData-Project/internal/models"
)

func testDataset() *models.Dataset {
	return &models.Dataset{Postings: []models.Posting{
		{JobID: "1", SkillCodes: []string{"IT", "QA"}},
		{JobID: "2", SkillCodes: []string{"PRDM"}},
		{JobID: "3", SkillCodes: []string{"ITSM"}},
		{JobID: "4", SkillCodes: []string{}},
	}}
}

func TestFilterEmptySelectionIsIdentity(t *testing.T) {
	ds := testDataset()

	filtered := Filter(ds, nil)
	assert.Same(t, ds, filtered)

	filtered = Filter(ds, []string{})
	assert.Same(t, ds, filtered)
}

func TestFilterMatchesWholeTokens(t *testing.T) {
	ds := testDataset()

	filtered := Filter(ds, []string{"IT"})
	require.Len(t, filtered.Postings, 1)
	assert.Equal(t, "1", filtered.Postings[0].JobID)
}

func TestFilterIntersection(t *testing.T) {
	ds := testDataset()

	filtered := Filter(ds, []string{"QA", "PRDM"})
	require.Len(t, filtered.Postings, 2)
	assert.Equal(t, "1", filtered.Postings[0].JobID)
	assert.Equal(t, "2", filtered.Postings[1].JobID)
}

func TestFilterIsMonotone(t *testing.T) {
	ds := testDataset()

	for _, selection := range [][]string{
		{"IT"}, {"QA"}, {"PRDM", "ITSM"}, {"ZZZ"}, {"IT", "QA", "PRDM", "ITSM"},
	} {
		filtered := Filter(ds, selection)
		assert.LessOrEqual(t, filtered.Len(), ds.Len())

		byID := make(map[string]bool)
		for _, p := range ds.Postings {
			byID[p.JobID] = true
		}
		for _, p := range filtered.Postings {
			assert.True(t, byID[p.JobID], "filter invented row %s", p.JobID)
		}
	}
}

func TestDictionaryLookup(t *testing.T) {
	d, err := buildDictionary([]models.Skill{
		{Name: "Information Technology", Abr: "IT"},
		{Name: "Quality Assurance", Abr: "QA"},
		{Name: "Design", Abr: "DSGN"},
	})
	require.NoError(t, err)

	abr, ok := d.Abr("Quality Assurance")
	require.True(t, ok)
	assert.Equal(t, "QA", abr)

	name, ok := d.Name("DSGN")
	require.True(t, ok)
	assert.Equal(t, "Design", name)

	_, ok = d.Abr("Underwater Basket Weaving")
	assert.False(t, ok)

	assert.Equal(t, []string{"Design", "Information Technology", "Quality Assurance"}, d.Names())
}

func TestDictionaryRejectsEmptySource(t *testing.T) {
	_, err := buildDictionary(nil)
	assert.Error(t, err)
}
