package dto

// CourseInfo is the nested course sub-object of a catalog entry. The id
// fields are null when the catalog row carried a non-numeric value.
type CourseInfo struct {
	Name      string   `json:"name" example:"Data Structures"`
	CatalogID *float64 `json:"catalog_id" example:"3306"`
	CoreID    *float64 `json:"core_id" example:"12"`
	CourseID  *float64 `json:"course_id" example:"4505"`
}

// CourseResponse pairs a program title with one of its courses
type CourseResponse struct {
	ProgramTitle string     `json:"program_title" example:"Computer Science B.S."`
	Course       CourseInfo `json:"course"`
}
