package models

// TeacherRow mirrors a row of the teachers table. The aggregate columns are
// maintained by the upstream ingestion pipeline and are nullable there, so
// they come back as pointers; NumRatings is coerced to 0 on scan.
type TeacherRow struct {
	TeacherID             string
	Name                  string
	Department            string
	AvgRating             *float64
	AvgDifficulty         *float64
	NumRatings            int
	WouldTakeAgainPercent *float64
}

// TeacherSummaryRow is the reduced shape returned by name lookups.
type TeacherSummaryRow struct {
	TeacherID  string
	Name       string
	Department string
}

// TagRow mirrors a row of the teacher_tag_counts table.
type TagRow struct {
	Tag string
	N   int
}
