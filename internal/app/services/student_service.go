package services

import (
	"context"
	"fmt"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetStudent(ctx context.Context, studentID int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.StudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, studentID int64, req *dto.StudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, studentID int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store *repositories.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(store *repositories.Store) StudentService {
	return &studentServiceImpl{store: store}
}

// validateStudentRequest checks required fields in a fixed order
func validateStudentRequest(req *dto.StudentRequest) error {
	if req.RollNumber == nil {
		return ErrRollNumberRequired
	}
	if req.FirstName == nil {
		return ErrFirstNameRequired
	}
	return nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.store.Repos().StudentRepository.GetStudentByID(ctx, studentID)
}

// CreateStudent validates the request and inserts a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	if err := validateStudentRequest(req); err != nil {
		return nil, err
	}

	student := &models.Student{
		RollNumber: req.RollNumber.String(),
		FirstName:  req.FirstName.String(),
		LastName:   req.LastName.StringPtr(),
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.StudentRepository.StudentExistsByRollNumber(ctx, student.RollNumber)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrConflict
		}

		id, err := repos.StudentRepository.CreateStudent(ctx, student)
		if err != nil {
			return err
		}
		student.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return student, nil
}

// UpdateStudent overwrites every field of an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID int64, req *dto.StudentRequest) (*models.Student, error) {
	var student *models.Student
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.StudentRepository.StudentExistsByID(ctx, studentID)
		if err != nil {
			return err
		}
		if !exists {
			return repositories.ErrStudentNotFound
		}

		if err := validateStudentRequest(req); err != nil {
			return err
		}

		student = &models.Student{
			ID:         studentID,
			RollNumber: req.RollNumber.String(),
			FirstName:  req.FirstName.String(),
			LastName:   req.LastName.StringPtr(),
		}
		return repos.StudentRepository.UpdateStudent(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student together with all of its enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID int64) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.StudentRepository.StudentExistsByID(ctx, studentID)
		if err != nil {
			return err
		}
		if !exists {
			return repositories.ErrStudentNotFound
		}

		if _, err := repos.EnrollmentRepository.DeleteEnrollmentsByStudentID(ctx, studentID); err != nil {
			return fmt.Errorf("error deleting enrollments of student: %w", err)
		}
		return repos.StudentRepository.DeleteStudent(ctx, studentID)
	})
}
