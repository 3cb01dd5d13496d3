package forecast

import (
	"time"

	"github.com/NotKing22/BigData-Project/internal/models"
)

// DailySeries is a posting-count series resampled to calendar days.
// Days with no postings between the first and last observation are
// present with a zero count, never omitted.
type DailySeries struct {
	Start        time.Time
	Counts       []float64
	ObservedDays int
}

func (s *DailySeries) End() time.Time {
	return s.Start.AddDate(0, 0, len(s.Counts)-1)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyCounts resamples one region's postings into a daily count series
// spanning the observed date range.
func DailyCounts(postings []models.Posting) *DailySeries {
	if len(postings) == 0 {
		return &DailySeries{}
	}

	counts := make(map[time.Time]float64)
	var first, last time.Time
	for i := range postings {
		d := day(postings[i].ListedDate)
		counts[d]++
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}

	n := int(last.Sub(first).Hours()/24) + 1
	series := &DailySeries{
		Start:        first,
		Counts:       make([]float64, n),
		ObservedDays: len(counts),
	}
	for d, c := range counts {
		idx := int(d.Sub(first).Hours() / 24)
		series.Counts[idx] = c
	}
	return series
}

// PartitionByState splits the dataset's rows by canonical region code.
func PartitionByState(ds *models.Dataset) map[string][]models.Posting {
	partitions := make(map[string][]models.Posting)
	for _, p := range ds.Postings {
		partitions[p.State] = append(partitions[p.State], p)
	}
	return partitions
}
