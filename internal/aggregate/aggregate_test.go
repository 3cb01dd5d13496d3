package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotKing22/BigData-Project/internal/models"
)

func TestRemoteDistributionTotalsMatchInput(t *testing.T) {
	ds := &models.Dataset{Postings: []models.Posting{
		{RemoteLabel: models.RemoteLabelRemote},
		{RemoteLabel: models.RemoteLabelNotRemote},
		{RemoteLabel: models.RemoteLabelNotRemote},
		{RemoteLabel: models.RemoteLabelRemote},
		{RemoteLabel: models.RemoteLabelNotRemote},
	}}

	rows := RemoteDistribution(ds)

	total := 0
	for _, row := range rows {
		total += row.Count
	}
	assert.Equal(t, ds.Len(), total)

	byLabel := make(map[string]int)
	for _, row := range rows {
		byLabel[row.Label] = row.Count
	}
	assert.Equal(t, 2, byLabel[models.RemoteLabelRemote])
	assert.Equal(t, 3, byLabel[models.RemoteLabelNotRemote])
}

func TestRemoteDistributionEmpty(t *testing.T) {
	rows := RemoteDistribution(&models.Dataset{})
	assert.Empty(t, rows)
}

func TestSalaryMeans(t *testing.T) {
	ds := &models.Dataset{Postings: []models.Posting{
		{RemoteLabel: models.RemoteLabelRemote, MedSalary: models.Float64(90000)},
		{RemoteLabel: models.RemoteLabelRemote, MedSalary: models.Float64(110000)},
		{RemoteLabel: models.RemoteLabelNotRemote, MedSalary: models.Float64(71000)},
		{RemoteLabel: models.RemoteLabelNotRemote, MedSalary: models.Float64(74000)},
	}}

	rows := SalaryMeans(ds)
	require.Len(t, rows, 2)

	byLabel := make(map[string]*int)
	for _, row := range rows {
		byLabel[row.Label] = row.MeanSalary
	}
	require.NotNil(t, byLabel[models.RemoteLabelRemote])
	assert.Equal(t, 100000, *byLabel[models.RemoteLabelRemote])
	// 72500 rounds to the even thousand
	require.NotNil(t, byLabel[models.RemoteLabelNotRemote])
	assert.Equal(t, 72000, *byLabel[models.RemoteLabelNotRemote])
}

func TestSalaryMeansMissingSalaries(t *testing.T) {
	ds := &models.Dataset{Postings: []models.Posting{
		{RemoteLabel: models.RemoteLabelRemote},
		{RemoteLabel: models.RemoteLabelNotRemote, MedSalary: models.Float64(50000)},
	}}

	rows := SalaryMeans(ds)
	require.Len(t, rows, 2)

	byLabel := make(map[string]*int)
	for _, row := range rows {
		byLabel[row.Label] = row.MeanSalary
	}
	assert.Nil(t, byLabel[models.RemoteLabelRemote])
	require.NotNil(t, byLabel[models.RemoteLabelNotRemote])
	assert.Equal(t, 50000, *byLabel[models.RemoteLabelNotRemote])
}
