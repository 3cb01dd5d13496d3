package models

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

const (
	PayPeriodHourly  = "HOURLY"
	PayPeriodMonthly = "MONTHLY"
	PayPeriodYearly  = "YEARLY"
)

const (
	RemoteLabelRemote    = "Remote"
	RemoteLabelNotRemote = "Not Remote"
)

// NotSpecified is the fill value for missing text fields.
const NotSpecified = "Not Specified"

type Posting struct {
	JobID           string
	Title           string
	Location        string
	City            string
	State           string
	MinSalary       *float64
	MaxSalary       *float64
	MedSalary       *float64
	PayPeriod       string
	RemoteAllowed   int
	RemoteLabel     string
	ExperienceLevel string
	CompanyID       int64
	CompanyName     string
	Speciality      string
	SkillsDesc      string
	SkillCodes      []string
	Views           int
	Applies         int
	ListedTime      int64
	ListedDate      time.Time
	Year            int
	Geometry        *geojson.Geometry
}

// SkillLink associates a posting with one skill code.
type SkillLink struct {
	JobID    string
	SkillAbr string
}

// Skill maps a human-readable skill name to its short code.
type Skill struct {
	Name string
	Abr  string
}

// CompanySpeciality carries one speciality entry for a company.
type CompanySpeciality struct {
	CompanyID  int64
	Speciality string
}

// ForecastRow is one per-state row of a forecast result.
type ForecastRow struct {
	State             string   `json:"state"`
	PredictedPostings int      `json:"predicted_postings"`
	Skills            []string `json:"skills"`
}

// Dataset is the in-memory table the pipeline and its consumers pass around.
type Dataset struct {
	Postings []Posting
}

func (d *Dataset) Len() int {
	return len(d.Postings)
}

// HasSkill reports whether the posting carries the given skill code.
// Codes are compared as discrete tokens, never by substring.
func (p *Posting) HasSkill(code string) bool {
	for _, c := range p.SkillCodes {
		if c == code {
			return true
		}
	}
	return false
}

// Float64 returns a pointer to v, for building nullable salary fields.
func Float64(v float64) *float64 {
	return &v
}
