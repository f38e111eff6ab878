package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db Querier, sb squirrel.StatementBuilderType) *EnrollmentRepository {
	return &EnrollmentRepository{db: db, sb: sb}
}

// CreateEnrollment inserts one enrollment row; duplicates of an existing pair are allowed
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	query, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(enrollment.StudentID, enrollment.CourseID).
		Suffix("RETURNING enrollment_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		logger.Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// GetEnrollmentsByStudentID retrieves all enrollments of a student in insertion order
func (r *EnrollmentRepository) GetEnrollmentsByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query, args, err := r.sb.Select("enrollment_id", "student_id", "course_id").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("enrollment_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get enrollments query")
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrollment rows")
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// DeleteEnrollments removes every enrollment of the (student, course) pair and returns how many went
func (r *EnrollmentRepository) DeleteEnrollments(ctx context.Context, studentID, courseID int64) (int64, error) {
	return r.delete(ctx, squirrel.Eq{"student_id": studentID, "course_id": courseID})
}

// DeleteEnrollmentsByStudentID removes every enrollment of a student
func (r *EnrollmentRepository) DeleteEnrollmentsByStudentID(ctx context.Context, studentID int64) (int64, error) {
	return r.delete(ctx, squirrel.Eq{"student_id": studentID})
}

func (r *EnrollmentRepository) delete(ctx context.Context, pred squirrel.Eq) (int64, error) {
	query, args, err := r.sb.Delete("enrollments").
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Interface("predicate", pred).Msg("Error executing delete enrollments query")
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	return affected, nil
}
