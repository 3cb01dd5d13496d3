package dataset

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/errors"
	"github.com/NotKing22/BigData-Project/internal/models"
)

// ClickHouseSource reads the scraped tables from the warehouse the
// ingestion side writes into, as an alternative to flat CSV exports.
type ClickHouseSource struct {
	logger *zap.Logger
	conn   clickhouse.Conn
}

func NewClickHouseSource(logger *zap.Logger, conn clickhouse.Conn) *ClickHouseSource {
	return &ClickHouseSource{
		logger: logger,
		conn:   conn,
	}
}

func (s *ClickHouseSource) Postings(ctx context.Context) ([]models.Posting, error) {
	query := `
		SELECT
			job_id, title, location, pay_period,
			min_salary, max_salary, med_salary,
			remote_allowed, formatted_experience_level,
			company_id, company_name, skills_desc,
			views, applies, listed_time
		FROM job_postings
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, errors.Malformed("querying job_postings", err)
	}
	defer rows.Close()

	var postings []models.Posting
	for rows.Next() {
		var (
			p         models.Posting
			min       *float64
			max       *float64
			med       *float64
			remote    *uint8
			views     uint32
			applies   uint32
			companyID uint64
		)
		if err := rows.Scan(
			&p.JobID, &p.Title, &p.Location, &p.PayPeriod,
			&min, &max, &med,
			&remote, &p.ExperienceLevel,
			&companyID, &p.CompanyName, &p.SkillsDesc,
			&views, &applies, &p.ListedTime,
		); err != nil {
			return nil, errors.Malformed("scanning job_postings row", err)
		}
		p.MinSalary = min
		p.MaxSalary = max
		p.MedSalary = med
		if remote != nil {
			p.RemoteAllowed = int(*remote)
		}
		p.Views = int(views)
		p.Applies = int(applies)
		p.CompanyID = int64(companyID)
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Malformed("iterating job_postings rows", err)
	}

	if len(postings) == 0 {
		return nil, errors.EmptySource("job_postings table has no rows", nil)
	}

	s.logger.Debug("loaded postings from clickhouse", zap.Int("rows", len(postings)))
	return postings, nil
}

func (s *ClickHouseSource) SkillLinks(ctx context.Context) ([]models.SkillLink, error) {
	rows, err := s.conn.Query(ctx, "SELECT job_id, skill_abr FROM job_skills")
	if err != nil {
		return nil, errors.Malformed("querying job_skills", err)
	}
	defer rows.Close()

	var links []models.SkillLink
	for rows.Next() {
		var l models.SkillLink
		if err := rows.Scan(&l.JobID, &l.SkillAbr); err != nil {
			return nil, errors.Malformed("scanning job_skills row", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Malformed("iterating job_skills rows", err)
	}

	if len(links) == 0 {
		return nil, errors.EmptySource("job_skills table has no rows", nil)
	}
	return links, nil
}

func (s *ClickHouseSource) Skills(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.conn.Query(ctx, "SELECT skill_name, skill_abr FROM skills")
	if err != nil {
		return nil, errors.Malformed("querying skills", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.Name, &sk.Abr); err != nil {
			return nil, errors.Malformed("scanning skills row", err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Malformed("iterating skills rows", err)
	}

	if len(skills) == 0 {
		return nil, errors.EmptySource("skills table has no rows", nil)
	}
	return skills, nil
}

func (s *ClickHouseSource) CompanySpecialities(ctx context.Context) ([]models.CompanySpeciality, error) {
	rows, err := s.conn.Query(ctx, "SELECT company_id, speciality FROM company_specialities")
	if err != nil {
		return nil, errors.Malformed("querying company_specialities", err)
	}
	defer rows.Close()

	var specs []models.CompanySpeciality
	for rows.Next() {
		var (
			companyID uint64
			spec      string
		)
		if err := rows.Scan(&companyID, &spec); err != nil {
			return nil, errors.Malformed("scanning company_specialities row", err)
		}
		specs = append(specs, models.CompanySpeciality{
			CompanyID:  int64(companyID),
			Speciality: spec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Malformed("iterating company_specialities rows", err)
	}

	if len(specs) == 0 {
		return nil, errors.EmptySource("company_specialities table has no rows", nil)
	}
	return specs, nil
}
