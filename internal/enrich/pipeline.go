package enrich

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/dataset"
	"github.com/NotKing22/BigData-Project/internal/models"
	"github.com/NotKing22/BigData-Project/internal/regions"
	"github.com/NotKing22/BigData-Project/internal/telemetry"
)

var tracer = telemetry.GetTracer("bigdata-project/enrich")

// Pipeline turns raw posting rows into the enriched dataset the
// dashboard consumes: skills merged on, salaries annualized, missing
// values filled, remote classification applied, locations resolved to
// canonical region codes and joined to boundary geometries.
type Pipeline struct {
	logger *zap.Logger
}

func NewPipeline(logger *zap.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

func (pl *Pipeline) Enrich(
	ctx context.Context,
	postings []models.Posting,
	links []models.SkillLink,
	specialities []models.CompanySpeciality,
	boundaries dataset.Boundaries,
) (*models.Dataset, error) {
	_, span := tracer.Start(ctx, "Pipeline.Enrich")
	defer span.End()

	enriched := make([]models.Posting, len(postings))
	copy(enriched, postings)

	skillsByJob := groupSkills(links)
	specialityByCompany := indexSpecialities(specialities)

	for i := range enriched {
		p := &enriched[i]

		p.SkillCodes = skillsByJob[p.JobID]
		if p.SkillCodes == nil {
			p.SkillCodes = []string{}
		}
		if spec, ok := specialityByCompany[p.CompanyID]; ok && p.CompanyID != 0 {
			p.Speciality = spec
		}

		normalizeSalary(p)
		classifyRemote(p)
		deriveTemporal(p)

		city, state := regions.SplitLocation(p.Location)
		p.City = city
		p.State = regions.Resolve(state)

		if geom, ok := boundaries[p.State]; ok {
			p.Geometry = geom
		}
	}

	fillSalaryGaps(enriched)
	fillMissingText(enriched)

	span.SetAttributes(telemetry.Int("postings.count", len(enriched)))
	pl.logger.Info("enriched job postings", zap.Int("count", len(enriched)))

	return &models.Dataset{Postings: enriched}, nil
}

// groupSkills collects skill codes per posting id, deduplicated and
// sorted. Dedup matters: the skill filter treats the codes as a set.
func groupSkills(links []models.SkillLink) map[string][]string {
	seen := make(map[string]map[string]struct{})
	for _, link := range links {
		if link.JobID == "" || link.SkillAbr == "" {
			continue
		}
		if seen[link.JobID] == nil {
			seen[link.JobID] = make(map[string]struct{})
		}
		seen[link.JobID][link.SkillAbr] = struct{}{}
	}

	grouped := make(map[string][]string, len(seen))
	for jobID, codes := range seen {
		list := make([]string, 0, len(codes))
		for code := range codes {
			list = append(list, code)
		}
		sort.Strings(list)
		grouped[jobID] = list
	}
	return grouped
}

// indexSpecialities keeps the first speciality seen per company.
func indexSpecialities(specs []models.CompanySpeciality) map[int64]string {
	indexed := make(map[int64]string, len(specs))
	for _, s := range specs {
		if _, ok := indexed[s.CompanyID]; !ok {
			indexed[s.CompanyID] = s.Speciality
		}
	}
	return indexed
}

// classifyRemote maps the nullable remote flag onto the fixed two-value
// label enumeration used by filters and aggregations.
func classifyRemote(p *models.Posting) {
	if p.RemoteAllowed == 1 {
		p.RemoteLabel = models.RemoteLabelRemote
	} else {
		p.RemoteAllowed = 0
		p.RemoteLabel = models.RemoteLabelNotRemote
	}
}

func deriveTemporal(p *models.Posting) {
	p.ListedDate = time.UnixMilli(p.ListedTime).UTC()
	p.Year = p.ListedDate.Year()
}

// fillMissingText applies the per-column defaults: free-text fields get
// the literal "Not Specified", and a missing company name is replaced by
// the most frequent one when any company name is present at all.
func fillMissingText(postings []models.Posting) {
	counts := make(map[string]int)
	for i := range postings {
		if postings[i].CompanyName != "" {
			counts[postings[i].CompanyName]++
		}
	}
	mode := ""
	best := 0
	for name, n := range counts {
		if n > best || (n == best && name < mode) {
			mode = name
			best = n
		}
	}

	for i := range postings {
		p := &postings[i]
		if p.SkillsDesc == "" {
			p.SkillsDesc = models.NotSpecified
		}
		if p.ExperienceLevel == "" {
			p.ExperienceLevel = models.NotSpecified
		}
		if p.CompanyName == "" && mode != "" {
			p.CompanyName = mode
		}
	}
}
