package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/NotKing22/BigData-Project/internal/models"
)

type Kind string

const (
	KindJobPostings Kind = "job_postings"
	KindForecast    Kind = "predict_job_postings_2025"
)

// Key identifies a cached dataset: a closed kind plus an optional skill
// scope. Skill-scoped forecasts share the one forecast kind instead of
// each skill category getting its own kind.
type Key struct {
	Kind   Kind
	Skills []string
}

func PostingsKey() Key {
	return Key{Kind: KindJobPostings}
}

func ForecastKey(skills []string) Key {
	return Key{Kind: KindForecast, Skills: skills}
}

func (k Key) String() string {
	if len(k.Skills) == 0 {
		return string(k.Kind)
	}
	codes := make([]string, len(k.Skills))
	copy(codes, k.Skills)
	sort.Strings(codes)
	return string(k.Kind) + ":" + strings.Join(codes, "+")
}

// Store is the process-wide memoization layer for derived datasets.
// Puts always overwrite, entries never expire, and a get either hits or
// reports a clean miss. Implementations must be safe for concurrent use.
type Store interface {
	GetPostings(ctx context.Context, key Key) (*models.Dataset, bool, error)
	PutPostings(ctx context.Context, key Key, ds *models.Dataset) error
	GetForecast(ctx context.Context, key Key) ([]models.ForecastRow, bool, error)
	PutForecast(ctx context.Context, key Key, rows []models.ForecastRow) error
	Invalidate(ctx context.Context) error
}

// MemoryStore keeps datasets in-process for the lifetime of the service.
type MemoryStore struct {
	mu        sync.RWMutex
	postings  map[string]*models.Dataset
	forecasts map[string][]models.ForecastRow
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		postings:  make(map[string]*models.Dataset),
		forecasts: make(map[string][]models.ForecastRow),
	}
}

func (s *MemoryStore) GetPostings(ctx context.Context, key Key) (*models.Dataset, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.postings[key.String()]
	return ds, ok, nil
}

func (s *MemoryStore) PutPostings(ctx context.Context, key Key, ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postings[key.String()] = ds
	return nil
}

func (s *MemoryStore) GetForecast(ctx context.Context, key Key) ([]models.ForecastRow, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.forecasts[key.String()]
	return rows, ok, nil
}

func (s *MemoryStore) PutForecast(ctx context.Context, key Key, rows []models.ForecastRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecasts[key.String()] = rows
	return nil
}

func (s *MemoryStore) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postings = make(map[string]*models.Dataset)
	s.forecasts = make(map[string][]models.ForecastRow)
	return nil
}
