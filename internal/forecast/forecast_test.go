package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/models"
	"github.com/NotKing22/BigData-Project/internal/regions"
)

func newTestEngine() *Engine {
	return NewEngine(zap.NewNop(), 365, 4)
}

func rowByState(rows []models.ForecastRow) map[string]models.ForecastRow {
	byState := make(map[string]models.ForecastRow, len(rows))
	for _, row := range rows {
		byState[row.State] = row
	}
	return byState
}

func TestForecastEmptyDatasetCoversEveryRegion(t *testing.T) {
	rows, err := newTestEngine().Forecast(context.Background(), &models.Dataset{}, 2025)
	require.NoError(t, err)

	require.Len(t, rows, len(regions.All))
	byState := rowByState(rows)
	for _, state := range regions.All {
		row, ok := byState[state]
		require.True(t, ok, "region %s missing from forecast", state)
		assert.Zero(t, row.PredictedPostings)
	}
}

func TestForecastNoDuplicateRegions(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := &models.Dataset{Postings: []models.Posting{
		postingOn("CA", base),
		postingOn("CA", base.AddDate(0, 0, 1)),
		postingOn("TX", base),
	}}

	rows, err := newTestEngine().Forecast(context.Background(), ds, 2025)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, row := range rows {
		seen[row.State]++
	}
	for state, n := range seen {
		assert.Equal(t, 1, n, "region %s appears %d times", state, n)
	}
	assert.Len(t, rows, len(regions.All))
}

func TestForecastSingleObservationDayIsZero(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := &models.Dataset{Postings: []models.Posting{
		postingOn("XX", base),
		postingOn("XX", base), // same day, still one observation
	}}

	rows, err := newTestEngine().Forecast(context.Background(), ds, 2025)
	require.NoError(t, err)

	// the off-enumeration region still gets its row, alongside full coverage
	require.Len(t, rows, len(regions.All)+1)
	row, ok := rowByState(rows)["XX"]
	require.True(t, ok)
	assert.Zero(t, row.PredictedPostings)
}

func TestForecastGrowingSeriesIsPositive(t *testing.T) {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	var postings []models.Posting
	for day := 0; day < 90; day++ {
		date := start.AddDate(0, 0, day)
		for n := 0; n < 2+day/10; n++ {
			postings = append(postings, postingOn("WA", date))
		}
	}

	rows, err := newTestEngine().Forecast(context.Background(), &models.Dataset{Postings: postings}, 2025)
	require.NoError(t, err)

	row := rowByState(rows)["WA"]
	assert.Positive(t, row.PredictedPostings)
}

func TestForecastNegativeSumClampsToZero(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var postings []models.Posting
	for day := 0; day < 60; day++ {
		date := start.AddDate(0, 0, day)
		for n := 0; n < 60-day; n++ {
			postings = append(postings, postingOn("NV", date))
		}
	}

	rows, err := newTestEngine().Forecast(context.Background(), &models.Dataset{Postings: postings}, 2025)
	require.NoError(t, err)

	row := rowByState(rows)["NV"]
	assert.Zero(t, row.PredictedPostings)
}

func TestForecastCollectsObservedSkills(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := &models.Dataset{Postings: []models.Posting{
		{State: "CO", ListedDate: base, SkillCodes: []string{"IT", "QA"}},
		{State: "CO", ListedDate: base.AddDate(0, 0, 1), SkillCodes: []string{"QA", "DSGN"}},
	}}

	rows, err := newTestEngine().Forecast(context.Background(), ds, 2025)
	require.NoError(t, err)

	row := rowByState(rows)["CO"]
	assert.Equal(t, []string{"DSGN", "IT", "QA"}, row.Skills)
}

func TestForecastHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := &models.Dataset{Postings: []models.Posting{
		postingOn("CA", base),
		postingOn("CA", base.AddDate(0, 0, 1)),
	}}

	_, err := newTestEngine().Forecast(ctx, ds, 2025)
	assert.Error(t, err)
}
