package skills

import (
	"context"
	"sort"

	"github.com/NotKing22/BigData-Project/internal/dataset"
	"github.com/NotKing22/BigData-Project/internal/errors"
	"github.com/NotKing22/BigData-Project/internal/models"
)

// Dictionary provides bidirectional lookup between human-readable skill
// names and their short codes. It is built once at startup from the
// skills source and never mutated afterwards.
type Dictionary struct {
	nameToAbr map[string]string
	abrToName map[string]string
	names     []string
}

func NewDictionary(ctx context.Context, source dataset.Source) (*Dictionary, error) {
	rows, err := source.Skills(ctx)
	if err != nil {
		return nil, err
	}
	return buildDictionary(rows)
}

func buildDictionary(rows []models.Skill) (*Dictionary, error) {
	if len(rows) == 0 {
		return nil, errors.EmptySource("skill dictionary has no entries", nil)
	}

	d := &Dictionary{
		nameToAbr: make(map[string]string, len(rows)),
		abrToName: make(map[string]string, len(rows)),
	}
	for _, row := range rows {
		d.nameToAbr[row.Name] = row.Abr
		d.abrToName[row.Abr] = row.Name
		d.names = append(d.names, row.Name)
	}
	sort.Strings(d.names)
	return d, nil
}

func (d *Dictionary) Abr(name string) (string, bool) {
	abr, ok := d.nameToAbr[name]
	return abr, ok
}

func (d *Dictionary) Name(abr string) (string, bool) {
	name, ok := d.abrToName[abr]
	return name, ok
}

// Names returns all skill names in sorted order, for dropdown options.
func (d *Dictionary) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Filter returns the subset of postings whose skill-code set intersects
// selected. An empty selection is the identity: the input is returned
// unchanged, same rows, same order. Codes are matched as whole tokens so
// that a short code like "IT" can never match inside another code.
func Filter(ds *models.Dataset, selected []string) *models.Dataset {
	if len(selected) == 0 {
		return ds
	}

	want := make(map[string]struct{}, len(selected))
	for _, code := range selected {
		want[code] = struct{}{}
	}

	filtered := &models.Dataset{Postings: make([]models.Posting, 0, ds.Len())}
	for _, p := range ds.Postings {
		for _, code := range p.SkillCodes {
			if _, ok := want[code]; ok {
				filtered.Postings = append(filtered.Postings, p)
				break
			}
		}
	}
	return filtered
}
