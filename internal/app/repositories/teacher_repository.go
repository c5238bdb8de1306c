package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"courseadvisor/internal/app/models"
	"courseadvisor/internal/db"
	"courseadvisor/internal/pkg/helpers"
	"courseadvisor/internal/pkg/logger"
)

// teacherColumns is the full aggregate column list of the teachers table.
var teacherColumns = []string{
	"teacher_id", "name", "department",
	"avg_rating", "avg_difficulty", "num_ratings", "would_take_again_percent",
}

// TeacherRepository handles read queries against the ratings store. Every
// query shape is fixed; only the id-batch lookup is rebuilt per call to
// match the batch size.
type TeacherRepository struct {
	store *db.Store
	sb    squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(store *db.Store) *TeacherRepository {
	return &TeacherRepository{
		store: store,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// TeachersByDepartment retrieves teachers with an exact department match,
// best rated first, teacher id as tie-break.
func (r *TeacherRepository) TeachersByDepartment(ctx context.Context, department string, limit, offset int) ([]models.TeacherRow, error) {
	query := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"department": department}).
		OrderBy("avg_rating DESC", "teacher_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryTeachers(ctx, query)
}

// TeacherIDsByCourse retrieves the distinct ids of teachers that have taught
// the given course code, ordered by id.
func (r *TeacherRepository) TeacherIDsByCourse(ctx context.Context, courseCode string, limit, offset int) ([]string, error) {
	handle, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := r.sb.Select("DISTINCT teacher_id").
		From("teacher_courses").
		Where(squirrel.Eq{"class_code": courseCode}).
		OrderBy("teacher_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building teacher ids by course SQL")
		return nil, fmt.Errorf("failed to build teacher ids query: %w", err)
	}

	rows, err := handle.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying teacher ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning teacher id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// TeachersByIDs retrieves the full rows for the given id set. Row order is
// whatever the store produces; callers impose their own ordering.
func (r *TeacherRepository) TeachersByIDs(ctx context.Context, ids []string) ([]models.TeacherRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"teacher_id": ids})

	return r.queryTeachers(ctx, query)
}

// TagsByTeacher retrieves tag counts for a teacher, most frequent first,
// tag text as tie-break.
func (r *TeacherRepository) TagsByTeacher(ctx context.Context, teacherID string, limit, offset int) ([]models.TagRow, error) {
	handle, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := r.sb.Select("tag", "n").
		From("teacher_tag_counts").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("n DESC", "tag ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building tags by teacher SQL")
		return nil, fmt.Errorf("failed to build tags query: %w", err)
	}

	rows, err := handle.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	var tags []models.TagRow
	for rows.Next() {
		var tag models.TagRow
		if err := rows.Scan(&tag.Tag, &tag.N); err != nil {
			return nil, fmt.Errorf("error scanning tag row: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

// TeachersByExactName retrieves teachers whose name matches exactly,
// case-insensitively, ordered by teacher id.
func (r *TeacherRepository) TeachersByExactName(ctx context.Context, name string, limit, offset int) ([]models.TeacherSummaryRow, error) {
	query := r.sb.Select("teacher_id", "name", "department").
		From("teachers").
		Where(squirrel.Expr("name = ? COLLATE NOCASE", name)).
		OrderBy("teacher_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.querySummaries(ctx, query)
}

// TeachersByNamePrefix retrieves teachers whose name starts with the given
// prefix, case-insensitively, ordered by name then teacher id.
func (r *TeacherRepository) TeachersByNamePrefix(ctx context.Context, prefix string, limit, offset int) ([]models.TeacherSummaryRow, error) {
	query := r.sb.Select("teacher_id", "name", "department").
		From("teachers").
		Where(squirrel.Expr("name LIKE ? COLLATE NOCASE", prefix+"%")).
		OrderBy("name ASC", "teacher_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.querySummaries(ctx, query)
}

func (r *TeacherRepository) queryTeachers(ctx context.Context, query squirrel.SelectBuilder) ([]models.TeacherRow, error) {
	handle, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building teacher SQL")
		return nil, fmt.Errorf("failed to build teacher query: %w", err)
	}

	rows, err := handle.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	var teachers []models.TeacherRow
	for rows.Next() {
		teacher, err := scanTeacherRow(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *TeacherRepository) querySummaries(ctx context.Context, query squirrel.SelectBuilder) ([]models.TeacherSummaryRow, error) {
	handle, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building teacher summary SQL")
		return nil, fmt.Errorf("failed to build teacher summary query: %w", err)
	}

	rows, err := handle.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying teacher summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.TeacherSummaryRow
	for rows.Next() {
		var summary models.TeacherSummaryRow
		if err := rows.Scan(&summary.TeacherID, &summary.Name, &summary.Department); err != nil {
			return nil, fmt.Errorf("error scanning teacher summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func scanTeacherRow(rows *sql.Rows) (models.TeacherRow, error) {
	var (
		teacher       models.TeacherRow
		avgRating     sql.NullFloat64
		avgDifficulty sql.NullFloat64
		numRatings    sql.NullInt64
		wouldRetake   sql.NullFloat64
	)

	if err := rows.Scan(
		&teacher.TeacherID,
		&teacher.Name,
		&teacher.Department,
		&avgRating,
		&avgDifficulty,
		&numRatings,
		&wouldRetake,
	); err != nil {
		return models.TeacherRow{}, fmt.Errorf("error scanning teacher row: %w", err)
	}

	teacher.AvgRating = helpers.NullFloat64ToPtr(avgRating)
	teacher.AvgDifficulty = helpers.NullFloat64ToPtr(avgDifficulty)
	teacher.NumRatings = helpers.NullInt64OrZero(numRatings)
	teacher.WouldTakeAgainPercent = helpers.NullFloat64ToPtr(wouldRetake)

	return teacher, nil
}
