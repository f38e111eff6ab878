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

// Student error types
var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = apperrors.ErrResourceNotFound
	// ErrRollNumberExists is returned when a student with the same roll number exists.
	ErrRollNumberExists = apperrors.ErrConflict
)

var studentColumns = []string{"student_id", "roll_number", "first_name", "last_name"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db Querier, sb squirrel.StatementBuilderType) *StudentRepository {
	return &StudentRepository{db: db, sb: sb}
}

func scanStudent(row squirrel.RowScanner) (*models.Student, error) {
	student := &models.Student{}
	var lastName sql.NullString
	if err := row.Scan(&student.ID, &student.RollNumber, &student.FirstName, &lastName); err != nil {
		return nil, err
	}
	student.LastName = helpers.NullStringPtr(lastName)
	return student, nil
}

// CreateStudent inserts a student and returns its generated ID
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	query, args, err := r.sb.Insert("students").
		Columns("roll_number", "first_name", "last_name").
		Values(student.RollNumber, student.FirstName, helpers.GetNullString(student.LastName)).
		Suffix("RETURNING student_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrRollNumberExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// StudentExistsByID reports whether a student with the given ID exists
func (r *StudentRepository) StudentExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.studentExists(ctx, squirrel.Eq{"student_id": id})
}

// StudentExistsByRollNumber reports whether any student already uses rollNumber
func (r *StudentRepository) StudentExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error) {
	return r.studentExists(ctx, squirrel.Eq{"roll_number": rollNumber})
}

func (r *StudentRepository) studentExists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(pred).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Interface("predicate", pred).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return count > 0, nil
}

// UpdateStudent overwrites every mutable column of an existing student
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"roll_number": student.RollNumber,
			"first_name":  student.FirstName,
			"last_name":   helpers.GetNullString(student.LastName),
		}).
		Where(squirrel.Eq{"student_id": student.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// The storage constraint still guards roll_number on update
			return ErrRollNumberExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	return requireAffected(result, ErrStudentNotFound)
}

// DeleteStudent deletes a student by ID. Enrollments are removed by the caller in the same transaction.
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	return requireAffected(result, ErrStudentNotFound)
}

// requireAffected returns notFound when a statement touched no rows
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
