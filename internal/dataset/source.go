package dataset

import (
	"context"

	"github.com/NotKing22/BigData-Project/internal/models"
)

// Source loads the raw tabular inputs the enrichment pipeline consumes.
// Implementations map load failures onto the shared error taxonomy:
// a missing backing location is NOT_FOUND, a readable source with zero
// rows is EMPTY_SOURCE, and anything unparseable is MALFORMED with the
// underlying cause preserved.
type Source interface {
	Postings(ctx context.Context) ([]models.Posting, error)
	SkillLinks(ctx context.Context) ([]models.SkillLink, error)
	Skills(ctx context.Context) ([]models.Skill, error)
	CompanySpecialities(ctx context.Context) ([]models.CompanySpeciality, error)
}
