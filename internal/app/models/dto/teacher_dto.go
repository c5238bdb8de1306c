package dto

// TeacherResponse is the public shape for a teacher with rating aggregates
type TeacherResponse struct {
	ID            string   `json:"id" example:"VGVhY2hlci0yMzkyNzkw"`   // Opaque teacher identifier
	Name          string   `json:"name" example:"Jane Smith"`           // Teacher's display name
	Department    string   `json:"department" example:"CS"`             // Department label
	AvgRating     *float64 `json:"avg_rating" example:"4.5"`            // Average rating, null when unrated
	AvgDifficulty *float64 `json:"avg_difficulty" example:"2.9"`        // Average difficulty, null when unrated
	NumRatings    int      `json:"num_ratings" example:"37"`            // Rating count, 0 when absent
}

// TeacherSummaryResponse is the reduced public shape used by name search.
// Rating fields are deliberately excluded.
type TeacherSummaryResponse struct {
	ID         string `json:"id" example:"VGVhY2hlci0yMzkyNzkw"`
	Name       string `json:"name" example:"Jane Smith"`
	Department string `json:"department" example:"CS"`
}

// TagResponse is one tag with its occurrence count for a teacher
type TagResponse struct {
	Tag string `json:"tag" example:"Tough grader"` // Free-text tag
	N   int    `json:"n" example:"12"`             // Occurrence count
}
