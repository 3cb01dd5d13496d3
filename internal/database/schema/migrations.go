package schema

// All lists the warehouse tables the insights pipeline reads. The
// ingestion side owns writing into them.
var All = []Migration{
	{
		Version:     1,
		Description: "create job_postings table",
		Up: `
			CREATE TABLE IF NOT EXISTS job_postings (
				job_id String,
				title String,
				location String,
				pay_period String,
				min_salary Nullable(Float64),
				max_salary Nullable(Float64),
				med_salary Nullable(Float64),
				remote_allowed Nullable(UInt8),
				formatted_experience_level String,
				company_id UInt64,
				company_name String,
				skills_desc String,
				views UInt32,
				applies UInt32,
				listed_time Int64
			) ENGINE = MergeTree()
			ORDER BY (job_id)
		`,
		Down: "DROP TABLE IF EXISTS job_postings",
	},
	{
		Version:     2,
		Description: "create job_skills table",
		Up: `
			CREATE TABLE IF NOT EXISTS job_skills (
				job_id String,
				skill_abr String
			) ENGINE = MergeTree()
			ORDER BY (job_id, skill_abr)
		`,
		Down: "DROP TABLE IF EXISTS job_skills",
	},
	{
		Version:     3,
		Description: "create skills table",
		Up: `
			CREATE TABLE IF NOT EXISTS skills (
				skill_abr String,
				skill_name String
			) ENGINE = MergeTree()
			ORDER BY (skill_abr)
		`,
		Down: "DROP TABLE IF EXISTS skills",
	},
	{
		Version:     4,
		Description: "create company_specialities table",
		Up: `
			CREATE TABLE IF NOT EXISTS company_specialities (
				company_id UInt64,
				speciality String
			) ENGINE = MergeTree()
			ORDER BY (company_id)
		`,
		Down: "DROP TABLE IF EXISTS company_specialities",
	},
}
