package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/dberrors"
	"github.com/yigit/enrollment/internal/pkg/helpers"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// Course error types
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = apperrors.ErrResourceNotFound
	// ErrCourseCodeExists is returned when a course with the same code exists.
	ErrCourseCodeExists = apperrors.ErrConflict
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db Querier, sb squirrel.StatementBuilderType) *CourseRepository {
	return &CourseRepository{db: db, sb: sb}
}

// CreateCourse creates a new course
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	query, args, err := r.sb.Insert("courses").
		Columns("course_code", "course_name", "course_description").
		Values(course.Code, course.Name, helpers.GetNullString(course.Description)).
		Suffix("RETURNING course_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrCourseCodeExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.sb.Select("course_id", "course_code", "course_name", "course_description").
		From("courses").
		Where(squirrel.Eq{"course_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	var description sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&course.ID, &course.Code, &course.Name, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	course.Description = helpers.NullStringPtr(description)

	return course, nil
}

// CourseExistsByID checks whether a course with the given ID exists
func (r *CourseRepository) CourseExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.courseExists(ctx, squirrel.Eq{"course_id": id})
}

// CourseExistsByCode checks whether a course already uses code
func (r *CourseRepository) CourseExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.courseExists(ctx, squirrel.Eq{"course_code": code})
}

func (r *CourseRepository) courseExists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From("courses").
		Where(pred).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course exists SQL")
		return false, fmt.Errorf("failed to build course existence query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Interface("predicate", pred).Msg("Error checking course existence")
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return count > 0, nil
}

// UpdateCourse updates an existing course
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"course_code":        course.Code,
			"course_name":        course.Name,
			"course_description": helpers.GetNullString(course.Description),
		}).
		Where(squirrel.Eq{"course_id": course.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Attempted to update to a code that already exists
			return ErrCourseCodeExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	return requireAffected(result, ErrCourseNotFound)
}

// DeleteCourse deletes a course by ID. Enrollment rows that reference it are left untouched.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	return requireAffected(result, ErrCourseNotFound)
}
