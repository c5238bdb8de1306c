package models

// CourseRecord is one parsed line of the program/course catalog file.
// Numeric fields that fail to parse are kept as NaN so the row stays
// present but marked numerically invalid.
type CourseRecord struct {
	ProgramTitle string
	CourseName   string
	CatalogID    float64
	CoreID       float64
	CourseID     float64
}
