package repository

import (
	"time"

	"gorm.io/gorm"
)

// AnalyticsRepository serves the business-facing reporting queries. Shapes
// are plain aggregation rows; bucketing labels live in the SQL so the
// service only zero-fills and orders.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type DayCountRow struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// ResponseCountsByDay groups responses per calendar day since the cutoff.
func (r *AnalyticsRepository) ResponseCountsByDay(surveyID uint, since time.Time) ([]DayCountRow, error) {
	var out []DayCountRow
	err := r.DB.Raw(`
		SELECT DATE(sr.completed_at) AS day, COUNT(*) AS count
		FROM survey_responses sr
		WHERE sr.survey_id = ? AND sr.completed_at >= ? AND sr.deleted_at IS NULL
		GROUP BY day
		ORDER BY day`, surveyID, since).Scan(&out).Error
	return out, err
}

type BucketCountRow struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// AgeDistribution buckets respondents by fixed boundaries. Respondents with
// no profile or no age land in Unknown.
func (r *AnalyticsRepository) AgeDistribution(surveyID uint) ([]BucketCountRow, error) {
	var out []BucketCountRow
	err := r.DB.Raw(`
		SELECT
			CASE
				WHEN p.age IS NULL THEN 'Unknown'
				WHEN p.age < 18 THEN 'Under 18'
				WHEN p.age BETWEEN 18 AND 24 THEN '18-24'
				WHEN p.age BETWEEN 25 AND 34 THEN '25-34'
				WHEN p.age BETWEEN 35 AND 44 THEN '35-44'
				WHEN p.age BETWEEN 45 AND 54 THEN '45-54'
				WHEN p.age >= 55 THEN '55+'
				ELSE 'Unknown'
			END AS bucket,
			COUNT(*) AS count
		FROM survey_responses sr
		LEFT JOIN partner_profiles p ON p.user_id = sr.partner_id AND p.deleted_at IS NULL
		WHERE sr.survey_id = ? AND sr.deleted_at IS NULL
		GROUP BY bucket
		ORDER BY bucket`, surveyID).Scan(&out).Error
	return out, err
}

func (r *AnalyticsRepository) GenderDistribution(surveyID uint) ([]BucketCountRow, error) {
	var out []BucketCountRow
	err := r.DB.Raw(`
		SELECT COALESCE(NULLIF(p.gender, ''), 'Unknown') AS bucket, COUNT(*) AS count
		FROM survey_responses sr
		LEFT JOIN partner_profiles p ON p.user_id = sr.partner_id AND p.deleted_at IS NULL
		WHERE sr.survey_id = ? AND sr.deleted_at IS NULL
		GROUP BY bucket
		ORDER BY count DESC`, surveyID).Scan(&out).Error
	return out, err
}

// LocationDistribution is limited to the five most common locations.
func (r *AnalyticsRepository) LocationDistribution(surveyID uint) ([]BucketCountRow, error) {
	var out []BucketCountRow
	err := r.DB.Raw(`
		SELECT COALESCE(NULLIF(p.location, ''), 'Unknown') AS bucket, COUNT(*) AS count
		FROM survey_responses sr
		LEFT JOIN partner_profiles p ON p.user_id = sr.partner_id AND p.deleted_at IS NULL
		WHERE sr.survey_id = ? AND sr.deleted_at IS NULL
		GROUP BY bucket
		ORDER BY count DESC
		LIMIT 5`, surveyID).Scan(&out).Error
	return out, err
}
