package enrich

import (
	"math"
	"sort"

	"github.com/NotKing22/BigData-Project/internal/models"
)

// Hourly postings are annualized assuming a 44-hour week, 4 weeks per
// month, 12 months per year.
const hoursFactor = 44 * 4 * 12

// normalizeSalary rewrites a posting's salary fields onto a yearly
// basis. The pay period always comes out YEARLY, so running the
// normalization a second time is a no-op. A missing or non-positive
// median is backfilled as the midpoint of min and max, and the final
// median is rounded to the nearest thousand.
func normalizeSalary(p *models.Posting) {
	switch p.PayPeriod {
	case models.PayPeriodHourly:
		scaleSalary(p, hoursFactor)
	case models.PayPeriodMonthly:
		scaleSalary(p, 12)
	}
	p.PayPeriod = models.PayPeriodYearly

	calculated := midpoint(p.MinSalary, p.MaxSalary)
	if p.MedSalary == nil || *p.MedSalary <= 0 {
		p.MedSalary = calculated
	}
	p.MedSalary = roundToThousand(p.MedSalary)
}

func scaleSalary(p *models.Posting, factor float64) {
	if p.MinSalary != nil {
		p.MinSalary = models.Float64(*p.MinSalary * factor)
	}
	if p.MaxSalary != nil {
		p.MaxSalary = models.Float64(*p.MaxSalary * factor)
	}
}

func midpoint(min, max *float64) *float64 {
	if min == nil || max == nil {
		return nil
	}
	return models.Float64((*min + *max) / 2)
}

// roundToThousand rounds to the nearest multiple of 1000, going to the
// even thousand on exact midpoints.
func roundToThousand(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return models.Float64(math.RoundToEven(*v/1000) * 1000)
}

// salaryStats carries the per-column fill values for salary fields that
// are still missing after normalization: mean of max, min of min, median
// of med, each computed over the present values only.
type salaryStats struct {
	maxMean   *float64
	minMin    *float64
	medMedian *float64
}

func computeSalaryStats(postings []models.Posting) salaryStats {
	var (
		maxSum   float64
		maxCount int
		minLow   *float64
		meds     []float64
	)
	for i := range postings {
		if v := postings[i].MaxSalary; v != nil {
			maxSum += *v
			maxCount++
		}
		if v := postings[i].MinSalary; v != nil {
			if minLow == nil || *v < *minLow {
				minLow = models.Float64(*v)
			}
		}
		if v := postings[i].MedSalary; v != nil {
			meds = append(meds, *v)
		}
	}

	var out salaryStats
	if maxCount > 0 {
		out.maxMean = models.Float64(maxSum / float64(maxCount))
	}
	out.minMin = minLow
	if len(meds) > 0 {
		sort.Float64s(meds)
		n := len(meds)
		if n%2 == 0 {
			out.medMedian = models.Float64((meds[n/2-1] + meds[n/2]) / 2)
		} else {
			out.medMedian = models.Float64(meds[n/2])
		}
	}
	return out
}

// fillSalaryGaps backfills salary fields still missing after
// normalization from the column statistics, then re-rounds the median so
// it stays on a thousand boundary.
func fillSalaryGaps(postings []models.Posting) {
	stats := computeSalaryStats(postings)
	for i := range postings {
		p := &postings[i]
		if p.MaxSalary == nil && stats.maxMean != nil {
			p.MaxSalary = models.Float64(*stats.maxMean)
		}
		if p.MinSalary == nil && stats.minMin != nil {
			p.MinSalary = models.Float64(*stats.minMin)
		}
		if p.MedSalary == nil && stats.medMedian != nil {
			p.MedSalary = roundToThousand(stats.medMedian)
		}
	}
}
