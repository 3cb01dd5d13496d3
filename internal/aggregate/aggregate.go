package aggregate

import (
	"math"

	"github.com/NotKing22/BigData-Project/internal/models"
)

// LabelCount is one row of the remote-distribution breakdown.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// LabelSalary is one row of the salary-means breakdown. MeanSalary is
// nil when no posting in the group carries a defined median salary.
type LabelSalary struct {
	Label      string `json:"label"`
	MeanSalary *int   `json:"mean_salary"`
}

// RemoteDistribution counts postings per remote-classification label.
// The counts always sum to the input row count.
func RemoteDistribution(ds *models.Dataset) []LabelCount {
	counts := make(map[string]int)
	for i := range ds.Postings {
		counts[ds.Postings[i].RemoteLabel]++
	}

	rows := make([]LabelCount, 0, 2)
	for _, label := range []string{models.RemoteLabelRemote, models.RemoteLabelNotRemote} {
		if n, ok := counts[label]; ok {
			rows = append(rows, LabelCount{Label: label, Count: n})
		}
	}
	return rows
}

// SalaryMeans averages the annualized median salary per
// remote-classification label, rounded to the nearest thousand.
func SalaryMeans(ds *models.Dataset) []LabelSalary {
	groups := make(map[string]int)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := range ds.Postings {
		p := &ds.Postings[i]
		groups[p.RemoteLabel]++
		if p.MedSalary == nil {
			continue
		}
		sums[p.RemoteLabel] += *p.MedSalary
		counts[p.RemoteLabel]++
	}

	rows := make([]LabelSalary, 0, 2)
	for _, label := range []string{models.RemoteLabelRemote, models.RemoteLabelNotRemote} {
		if groups[label] == 0 {
			continue
		}
		row := LabelSalary{Label: label}
		if n := counts[label]; n > 0 {
			mean := int(math.RoundToEven(sums[label]/float64(n)/1000) * 1000)
			row.MeanSalary = &mean
		}
		rows = append(rows, row)
	}
	return rows
}
