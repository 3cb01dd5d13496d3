package forecast

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NotKing22/BigData-Project/internal/models"
	"github.com/NotKing22/BigData-Project/internal/regions"
	"github.com/NotKing22/BigData-Project/internal/telemetry"
)

var tracer = telemetry.GetTracer("bigdata-project/forecast")

// Engine projects a full-year posting total per region by fitting an
// independent model on each region's daily count series. The output
// always covers the entire canonical region enumeration: regions with
// no data, or with too little history to fit, appear with a zero
// forecast instead of being dropped.
type Engine struct {
	logger      *zap.Logger
	horizonDays int
	workers     int
}

func NewEngine(logger *zap.Logger, horizonDays, workers int) *Engine {
	if horizonDays <= 0 {
		horizonDays = 365
	}
	if workers <= 0 {
		workers = 1
	}
	return &Engine{
		logger:      logger,
		horizonDays: horizonDays,
		workers:     workers,
	}
}

func (e *Engine) Forecast(ctx context.Context, ds *models.Dataset, targetYear int) ([]models.ForecastRow, error) {
	ctx, span := tracer.Start(ctx, "Engine.Forecast")
	defer span.End()

	partitions := PartitionByState(ds)

	states := make([]string, 0, len(partitions))
	for state := range partitions {
		states = append(states, state)
	}
	sort.Strings(states)

	rows := make([]models.ForecastRow, len(states))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, state := range states {
		i, state := i, state
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = e.forecastRegion(state, partitions[state], targetYear)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	covered := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		covered[row.State] = struct{}{}
	}
	for _, state := range regions.All {
		if _, ok := covered[state]; !ok {
			rows = append(rows, models.ForecastRow{
				State:             state,
				PredictedPostings: 0,
				Skills:            []string{},
			})
		}
	}

	sort.Slice(rows, func(a, b int) bool { return rows[a].State < rows[b].State })

	span.SetAttributes(
		telemetry.Int("regions.count", len(rows)),
		telemetry.Int("target_year", targetYear),
	)
	e.logger.Info("forecast complete",
		zap.Int("regions", len(rows)),
		zap.Int("target_year", targetYear))

	return rows, nil
}

func (e *Engine) forecastRegion(state string, postings []models.Posting, targetYear int) models.ForecastRow {
	row := models.ForecastRow{
		State:  state,
		Skills: observedSkills(postings),
	}

	series := DailyCounts(postings)
	if series.ObservedDays < 2 {
		return row
	}

	model := Fit(series.Counts)

	n := len(series.Counts)
	last := series.End()
	var total float64
	for offset := 1; offset <= e.horizonDays; offset++ {
		d := last.AddDate(0, 0, offset)
		if d.Year() != targetYear {
			continue
		}
		total += model.LowerBound(n - 1 + offset)
	}

	predicted := int(math.Round(total))
	if predicted < 0 {
		// negative posting counts are meaningless
		predicted = 0
	}
	row.PredictedPostings = predicted
	return row
}

// observedSkills collects the distinct skill codes seen in the region's
// input slice, sorted.
func observedSkills(postings []models.Posting) []string {
	seen := make(map[string]struct{})
	for i := range postings {
		for _, code := range postings[i].SkillCodes {
			seen[code] = struct{}{}
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
