package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"courseadvisor/internal/app/models"
	"courseadvisor/internal/app/models/dto"
	"courseadvisor/internal/pkg/helpers"
)

// TeacherStore is the slice of the ratings repository the teacher service
// depends on.
type TeacherStore interface {
	TeachersByDepartment(ctx context.Context, department string, limit, offset int) ([]models.TeacherRow, error)
	TeacherIDsByCourse(ctx context.Context, courseCode string, limit, offset int) ([]string, error)
	TeachersByIDs(ctx context.Context, ids []string) ([]models.TeacherRow, error)
	TagsByTeacher(ctx context.Context, teacherID string, limit, offset int) ([]models.TagRow, error)
	TeachersByExactName(ctx context.Context, name string, limit, offset int) ([]models.TeacherSummaryRow, error)
	TeachersByNamePrefix(ctx context.Context, prefix string, limit, offset int) ([]models.TeacherSummaryRow, error)
}

// PageOptions carries optional pagination parameters. A nil Limit means the
// operation default; out-of-range values are clamped, never rejected.
type PageOptions struct {
	Limit  *int
	Offset *int
}

// NameOptions extends PageOptions with the exact-match flag for name search.
type NameOptions struct {
	PageOptions
	Exact bool
}

// TeacherService defines the interface for teacher query operations
type TeacherService interface {
	GetTeachersByDepartment(ctx context.Context, department string, opts PageOptions) ([]dto.TeacherResponse, error)
	GetTeachersByCourse(ctx context.Context, courseCode string, opts PageOptions) ([]dto.TeacherResponse, error)
	GetTeachersByName(ctx context.Context, name string, opts NameOptions) ([]dto.TeacherSummaryResponse, error)
	GetTeacherTags(ctx context.Context, teacherID string, opts PageOptions) ([]dto.TagResponse, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	repo TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(repo TeacherStore) TeacherService {
	return &teacherServiceImpl{repo: repo}
}

// GetTeachersByDepartment returns the teachers of a department, best rated
// first. An empty department is not an error; it returns no results.
func (s *teacherServiceImpl) GetTeachersByDepartment(ctx context.Context, department string, opts PageOptions) ([]dto.TeacherResponse, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return []dto.TeacherResponse{}, nil
	}

	limit := helpers.ClampLimit(opts.Limit, helpers.DefaultDepartmentLimit, helpers.MaxDepartmentLimit)
	offset := helpers.ClampOffset(opts.Offset)

	rows, err := s.repo.TeachersByDepartment(ctx, department, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error getting teachers by department: %w", err)
	}

	return toTeacherResponses(rows), nil
}

// GetTeachersByCourse recommends teachers for a course code. The id page is
// resolved first; the full rows are then fetched as one batch and re-ranked
// here, because the batch fetch guarantees no ordering of its own.
func (s *teacherServiceImpl) GetTeachersByCourse(ctx context.Context, courseCode string, opts PageOptions) ([]dto.TeacherResponse, error) {
	courseCode = strings.TrimSpace(courseCode)
	if courseCode == "" {
		return []dto.TeacherResponse{}, nil
	}

	limit := helpers.ClampLimit(opts.Limit, helpers.DefaultCourseLimit, helpers.MaxCourseLimit)
	offset := helpers.ClampOffset(opts.Offset)

	ids, err := s.repo.TeacherIDsByCourse(ctx, courseCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error getting teacher ids for course: %w", err)
	}
	if len(ids) == 0 {
		return []dto.TeacherResponse{}, nil
	}

	rows, err := s.repo.TeachersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error getting teachers by ids: %w", err)
	}

	rankTeachers(rows)
	return toTeacherResponses(rows), nil
}

// GetTeachersByName finds teachers by name. Exact matches always win: with
// the exact flag set only exact matches are returned, and without it the
// prefix search runs only when the exact search finds nothing. The two
// tiers are never combined.
func (s *teacherServiceImpl) GetTeachersByName(ctx context.Context, name string, opts NameOptions) ([]dto.TeacherSummaryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []dto.TeacherSummaryResponse{}, nil
	}

	limit := helpers.ClampLimit(opts.Limit, helpers.DefaultNameLimit, helpers.MaxNameLimit)
	offset := helpers.ClampOffset(opts.Offset)

	exactRows, err := s.repo.TeachersByExactName(ctx, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error getting teachers by exact name: %w", err)
	}
	if opts.Exact || len(exactRows) > 0 {
		return toTeacherSummaryResponses(exactRows), nil
	}

	prefixRows, err := s.repo.TeachersByNamePrefix(ctx, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error getting teachers by name prefix: %w", err)
	}
	return toTeacherSummaryResponses(prefixRows), nil
}

// GetTeacherTags returns a teacher's tag counts in store order (most
// frequent first).
func (s *teacherServiceImpl) GetTeacherTags(ctx context.Context, teacherID string, opts PageOptions) ([]dto.TagResponse, error) {
	if strings.TrimSpace(teacherID) == "" {
		return []dto.TagResponse{}, nil
	}

	limit := helpers.ClampLimit(opts.Limit, helpers.DefaultTagLimit, helpers.MaxTagLimit)
	offset := helpers.ClampOffset(opts.Offset)

	rows, err := s.repo.TagsByTeacher(ctx, teacherID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error getting teacher tags: %w", err)
	}

	tags := make([]dto.TagResponse, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, dto.TagResponse{Tag: row.Tag, N: row.N})
	}
	return tags, nil
}

// rankTeachers sorts by average rating descending with teacher id ascending
// as the tie-break. A missing rating compares as negative infinity so
// unrated teachers always sort last; the comparator is total, so no
// NaN/null comparison semantics leak in.
func rankTeachers(rows []models.TeacherRow) {
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := math.Inf(-1), math.Inf(-1)
		if rows[i].AvgRating != nil {
			ri = *rows[i].AvgRating
		}
		if rows[j].AvgRating != nil {
			rj = *rows[j].AvgRating
		}
		if ri != rj {
			return ri > rj
		}
		return rows[i].TeacherID < rows[j].TeacherID
	})
}

func toTeacherResponses(rows []models.TeacherRow) []dto.TeacherResponse {
	teachers := make([]dto.TeacherResponse, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, dto.TeacherResponse{
			ID:            row.TeacherID,
			Name:          row.Name,
			Department:    row.Department,
			AvgRating:     row.AvgRating,
			AvgDifficulty: row.AvgDifficulty,
			NumRatings:    row.NumRatings,
		})
	}
	return teachers
}

func toTeacherSummaryResponses(rows []models.TeacherSummaryRow) []dto.TeacherSummaryResponse {
	summaries := make([]dto.TeacherSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.TeacherSummaryResponse{
			ID:         row.TeacherID,
			Name:       row.Name,
			Department: row.Department,
		})
	}
	return summaries
}
