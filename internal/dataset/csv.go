package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/config"
	"github.com/NotKing22/BigData-Project/internal/errors"
	"github.com/NotKing22/BigData-Project/internal/models"
)

// CSVSource reads the scraped job-market tables from CSV files on disk.
type CSVSource struct {
	logger  *zap.Logger
	config  *config.Config
	maxRows int
}

func NewCSVSource(logger *zap.Logger, cfg *config.Config) *CSVSource {
	return &CSVSource{
		logger:  logger,
		config:  cfg,
		maxRows: cfg.MaxSourceRows,
	}
}

// table is one loaded CSV: a header index plus data rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

func (t *table) field(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (s *CSVSource) loadTable(path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("source file %s", path), err)
		}
		return nil, errors.Malformed(fmt.Sprintf("opening source file %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.EmptySource(fmt.Sprintf("source file %s has no rows", path), nil)
	}
	if err != nil {
		return nil, errors.Malformed(fmt.Sprintf("reading header of %s", path), err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, errors.Malformed(fmt.Sprintf("source file %s missing required column %q", path, name), nil)
		}
	}

	var rows [][]string
	for s.maxRows <= 0 || len(rows) < s.maxRows {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Malformed(fmt.Sprintf("parsing %s", path), err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.EmptySource(fmt.Sprintf("source file %s has no rows", path), nil)
	}

	s.logger.Debug("loaded source table",
		zap.String("path", path),
		zap.Int("rows", len(rows)))

	return &table{columns: columns, rows: rows}, nil
}

func (s *CSVSource) Postings(ctx context.Context) ([]models.Posting, error) {
	required := []string{"job_id", "title", "location", "pay_period", "listed_time"}
	t, err := s.loadTable(s.config.JobPostingsPath, required)
	if err != nil {
		return nil, err
	}

	postings := make([]models.Posting, 0, len(t.rows))
	for _, row := range t.rows {
		p := models.Posting{
			JobID:           t.field(row, "job_id"),
			Title:           t.field(row, "title"),
			Location:        t.field(row, "location"),
			PayPeriod:       t.field(row, "pay_period"),
			ExperienceLevel: t.field(row, "formatted_experience_level"),
			CompanyName:     t.field(row, "company_name"),
			SkillsDesc:      t.field(row, "skills_desc"),
			MinSalary:       parseNullableFloat(t.field(row, "min_salary")),
			MaxSalary:       parseNullableFloat(t.field(row, "max_salary")),
			MedSalary:       parseNullableFloat(t.field(row, "med_salary")),
			RemoteAllowed:   parseIntDefault(t.field(row, "remote_allowed"), 0),
			CompanyID:       parseInt64Default(t.field(row, "company_id"), 0),
			Views:           parseIntDefault(t.field(row, "views"), 0),
			Applies:         parseIntDefault(t.field(row, "applies"), 0),
			ListedTime:      parseInt64Default(t.field(row, "listed_time"), 0),
		}
		postings = append(postings, p)
	}

	return postings, nil
}

func (s *CSVSource) SkillLinks(ctx context.Context) ([]models.SkillLink, error) {
	t, err := s.loadTable(s.config.JobSkillsPath, []string{"job_id", "skill_abr"})
	if err != nil {
		return nil, err
	}

	links := make([]models.SkillLink, 0, len(t.rows))
	for _, row := range t.rows {
		links = append(links, models.SkillLink{
			JobID:    t.field(row, "job_id"),
			SkillAbr: t.field(row, "skill_abr"),
		})
	}
	return links, nil
}

func (s *CSVSource) Skills(ctx context.Context) ([]models.Skill, error) {
	t, err := s.loadTable(s.config.SkillsPath, []string{"skill_name", "skill_abr"})
	if err != nil {
		return nil, err
	}

	skills := make([]models.Skill, 0, len(t.rows))
	for _, row := range t.rows {
		skills = append(skills, models.Skill{
			Name: t.field(row, "skill_name"),
			Abr:  t.field(row, "skill_abr"),
		})
	}
	return skills, nil
}

func (s *CSVSource) CompanySpecialities(ctx context.Context) ([]models.CompanySpeciality, error) {
	t, err := s.loadTable(s.config.CompanySpecialitiesPath, []string{"company_id", "speciality"})
	if err != nil {
		return nil, err
	}

	specs := make([]models.CompanySpeciality, 0, len(t.rows))
	for _, row := range t.rows {
		specs = append(specs, models.CompanySpeciality{
			CompanyID:  parseInt64Default(t.field(row, "company_id"), 0),
			Speciality: t.field(row, "speciality"),
		})
	}
	return specs, nil
}

// parseNullableFloat coerces a salary field to numeric, treating
// non-numeric content as missing.
func parseNullableFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return def
}

func parseInt64Default(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(v)
	}
	return def
}
