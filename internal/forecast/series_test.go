package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotKing22/BigData-Project/internal/models"
)

func postingOn(state string, date time.Time) models.Posting {
	return models.Posting{State: state, ListedDate: date}
}

func TestDailyCountsFillsGaps(t *testing.T) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	postings := []models.Posting{
		postingOn("CA", base),
		postingOn("CA", base),
		postingOn("CA", base.AddDate(0, 0, 3)),
	}

	series := DailyCounts(postings)

	require.Len(t, series.Counts, 4)
	assert.Equal(t, []float64{2, 0, 0, 1}, series.Counts)
	assert.Equal(t, 2, series.ObservedDays)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), series.Start)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), series.End())
}

func TestDailyCountsEmpty(t *testing.T) {
	series := DailyCounts(nil)
	assert.Zero(t, series.ObservedDays)
	assert.Empty(t, series.Counts)
}

func TestPartitionByState(t *testing.T) {
	ds := &models.Dataset{Postings: []models.Posting{
		{State: "CA"}, {State: "TX"}, {State: "CA"},
	}}

	partitions := PartitionByState(ds)

	require.Len(t, partitions, 2)
	assert.Len(t, partitions["CA"], 2)
	assert.Len(t, partitions["TX"], 1)
}
