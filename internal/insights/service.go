package insights

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/aggregate"
	"github.com/NotKing22/BigData-Project/internal/config"
	"github.com/NotKing22/BigData-Project/internal/dataset"
	"github.com/NotKing22/BigData-Project/internal/enrich"
	"github.com/NotKing22/BigData-Project/internal/forecast"
	"github.com/NotKing22/BigData-Project/internal/models"
	"github.com/NotKing22/BigData-Project/internal/skills"
	"github.com/NotKing22/BigData-Project/internal/store"
	"github.com/NotKing22/BigData-Project/internal/telemetry"
)

var tracer = telemetry.GetTracer("bigdata-project/insights")

// Service ties the pipeline together for the presentation layer: load,
// enrich, cache, filter, forecast, aggregate. It is the only writer of
// the dataset store.
type Service struct {
	logger     *zap.Logger
	config     *config.Config
	source     dataset.Source
	store      store.Store
	pipeline   *enrich.Pipeline
	engine     *forecast.Engine
	dictionary *skills.Dictionary
	boundaries dataset.Boundaries
}

func NewService(
	logger *zap.Logger,
	cfg *config.Config,
	source dataset.Source,
	st store.Store,
	pipeline *enrich.Pipeline,
	engine *forecast.Engine,
	dictionary *skills.Dictionary,
	boundaries dataset.Boundaries,
) *Service {
	return &Service{
		logger:     logger,
		config:     cfg,
		source:     source,
		store:      st,
		pipeline:   pipeline,
		engine:     engine,
		dictionary: dictionary,
		boundaries: boundaries,
	}
}

// SkillOption pairs a human-readable skill name with its code, for the
// presentation layer's selection widget.
type SkillOption struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SkillOptions lists every known skill in name order.
func (s *Service) SkillOptions() []SkillOption {
	names := s.dictionary.Names()
	options := make([]SkillOption, 0, len(names))
	for _, name := range names {
		code, _ := s.dictionary.Abr(name)
		options = append(options, SkillOption{Name: name, Code: code})
	}
	return options
}

// ProcessJobPostings loads the raw sources, runs the enrichment
// pipeline, and stores the result under the job-postings key. Load
// failures propagate untouched so callers can tell a missing source
// from an empty one.
func (s *Service) ProcessJobPostings(ctx context.Context) (*models.Dataset, error) {
	ctx, span := tracer.Start(ctx, "Service.ProcessJobPostings")
	defer span.End()

	postings, err := s.source.Postings(ctx)
	if err != nil {
		return nil, err
	}
	links, err := s.source.SkillLinks(ctx)
	if err != nil {
		return nil, err
	}
	specialities, err := s.source.CompanySpecialities(ctx)
	if err != nil {
		return nil, err
	}

	ds, err := s.pipeline.Enrich(ctx, postings, links, specialities, s.boundaries)
	if err != nil {
		return nil, err
	}

	if err := s.store.PutPostings(ctx, store.PostingsKey(), ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// Postings returns the enriched dataset, recomputing on a cache miss.
func (s *Service) Postings(ctx context.Context) (*models.Dataset, error) {
	ds, ok, err := s.store.GetPostings(ctx, store.PostingsKey())
	if err != nil {
		return nil, err
	}
	if ok {
		return ds, nil
	}
	return s.ProcessJobPostings(ctx)
}

// ForecastForSkills returns the target-year forecast scoped to an
// optional skill selection. One parameterized path serves every skill
// category; the cache key is derived from the selection.
func (s *Service) ForecastForSkills(ctx context.Context, selected []string) ([]models.ForecastRow, error) {
	ctx, span := tracer.Start(ctx, "Service.ForecastForSkills")
	defer span.End()

	key := store.ForecastKey(selected)
	if rows, ok, err := s.store.GetForecast(ctx, key); err != nil {
		return nil, err
	} else if ok {
		return rows, nil
	}

	for _, code := range selected {
		if _, ok := s.dictionary.Name(code); !ok {
			s.logger.Warn("unknown skill code in selection", zap.String("code", code))
		}
	}

	runID := uuid.NewString()
	s.logger.Info("computing forecast",
		zap.String("run_id", runID),
		zap.Strings("skills", selected),
		zap.Int("target_year", s.config.ForecastTargetYear))

	ds, err := s.Postings(ctx)
	if err != nil {
		return nil, err
	}
	filtered := skills.Filter(ds, selected)

	if s.config.ForecastTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ForecastTimeout)
		defer cancel()
	}

	rows, err := s.engine.Forecast(ctx, filtered, s.config.ForecastTargetYear)
	if err != nil {
		s.logger.Error("forecast failed",
			zap.String("run_id", runID),
			zap.Error(err))
		return nil, err
	}

	if err := s.store.PutForecast(ctx, key, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RemoteDistribution computes the remote/non-remote breakdown on
// demand, optionally scoped to a skill selection. Never cached.
func (s *Service) RemoteDistribution(ctx context.Context, selected []string) ([]aggregate.LabelCount, error) {
	ds, err := s.Postings(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.RemoteDistribution(skills.Filter(ds, selected)), nil
}

// SalaryMeans computes the mean median-salary per remote label on
// demand, optionally scoped to a skill selection. Never cached.
func (s *Service) SalaryMeans(ctx context.Context, selected []string) ([]aggregate.LabelSalary, error) {
	ds, err := s.Postings(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.SalaryMeans(skills.Filter(ds, selected)), nil
}

// Refresh drops every cached dataset and rebuilds the enriched postings,
// so the next forecast request recomputes against fresh data.
func (s *Service) Refresh(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Service.Refresh")
	defer span.End()

	if err := s.store.Invalidate(ctx); err != nil {
		return err
	}
	_, err := s.ProcessJobPostings(ctx)
	return err
}
