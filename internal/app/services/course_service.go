package services

import (
	"context"
	"fmt"
	"math"

	"courseadvisor/internal/app/models"
	"courseadvisor/internal/app/models/dto"
)

// CatalogStore is the slice of the course catalog the course service
// depends on.
type CatalogStore interface {
	ByProgram(program string) ([]models.CourseRecord, error)
}

// CourseService defines the interface for catalog query operations
type CourseService interface {
	GetCourses(ctx context.Context, program string) ([]dto.CourseResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	catalog CatalogStore
}

// NewCourseService creates a new course service instance
func NewCourseService(catalog CatalogStore) CourseService {
	return &courseServiceImpl{catalog: catalog}
}

// GetCourses returns the catalog entries for a program, or the full catalog
// when no program is given. The catalog is small; there is no pagination.
func (s *courseServiceImpl) GetCourses(ctx context.Context, program string) ([]dto.CourseResponse, error) {
	records, err := s.catalog.ByProgram(program)
	if err != nil {
		return nil, fmt.Errorf("error loading course catalog: %w", err)
	}

	courses := make([]dto.CourseResponse, 0, len(records))
	for _, record := range records {
		courses = append(courses, dto.CourseResponse{
			ProgramTitle: record.ProgramTitle,
			Course: dto.CourseInfo{
				Name:      record.CourseName,
				CatalogID: numOrNil(record.CatalogID),
				CoreID:    numOrNil(record.CoreID),
				CourseID:  numOrNil(record.CourseID),
			},
		})
	}
	return courses, nil
}

// numOrNil maps the NaN sentinel of an unparseable catalog field to a JSON
// null rather than letting NaN reach the encoder, which would reject it.
func numOrNil(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
