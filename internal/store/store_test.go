package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotKing22/BigData-Project/internal/models"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "job_postings", PostingsKey().String())
	assert.Equal(t, "predict_job_postings_2025", ForecastKey(nil).String())

	// skill scope is sorted so equivalent selections share one entry
	assert.Equal(t,
		"predict_job_postings_2025:DSGN+IT",
		ForecastKey([]string{"IT", "DSGN"}).String())
	assert.Equal(t,
		ForecastKey([]string{"DSGN", "IT"}).String(),
		ForecastKey([]string{"IT", "DSGN"}).String())
}

func TestMemoryStoreMissThenHit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.GetPostings(ctx, PostingsKey())
	require.NoError(t, err)
	assert.False(t, ok)

	ds := &models.Dataset{Postings: []models.Posting{{JobID: "1"}}}
	require.NoError(t, s.PutPostings(ctx, PostingsKey(), ds))

	got, ok, err := s.GetPostings(ctx, PostingsKey())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, got.Len())
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := []models.ForecastRow{{State: "CA", PredictedPostings: 10}}
	second := []models.ForecastRow{{State: "CA", PredictedPostings: 99}}
	key := ForecastKey([]string{"IT"})

	require.NoError(t, s.PutForecast(ctx, key, first))
	require.NoError(t, s.PutForecast(ctx, key, second))

	got, ok, err := s.GetForecast(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 99, got[0].PredictedPostings)
}

func TestMemoryStoreInvalidate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.PutPostings(ctx, PostingsKey(), &models.Dataset{}))
	require.NoError(t, s.PutForecast(ctx, ForecastKey(nil), []models.ForecastRow{}))

	require.NoError(t, s.Invalidate(ctx))

	_, ok, err := s.GetPostings(ctx, PostingsKey())
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = s.GetForecast(ctx, ForecastKey(nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = s.PutPostings(ctx, PostingsKey(), &models.Dataset{})
		}
	}()
	for i := 0; i < 200; i++ {
		_, _, _ = s.GetPostings(ctx, PostingsKey())
	}
	<-done
}
