package services

import (
	"context"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	ListEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, studentID int64, req *dto.EnrollmentRequest) ([]*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, studentID, courseID int64) error
}

type enrollmentServiceImpl struct {
	store *repositories.Store
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store *repositories.Store) EnrollmentService {
	return &enrollmentServiceImpl{store: store}
}

// ListEnrollments returns a student's enrollments in creation order
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	repos := s.store.Repos()

	exists, err := repos.StudentRepository.StudentExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStudentDoesNotExist
	}

	enrollments, err := repos.EnrollmentRepository.GetEnrollmentsByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return nil, apperrors.ErrResourceNotFound
	}

	return enrollments, nil
}

// CreateEnrollment enrolls a student in a course. Enrolling twice in the same
// course creates a second row.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, studentID int64, req *dto.EnrollmentRequest) ([]*models.Enrollment, error) {
	var enrollment *models.Enrollment
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.StudentRepository.StudentExistsByID(ctx, studentID)
		if err != nil {
			return err
		}
		if !exists {
			return repositories.ErrStudentNotFound
		}

		courseID, ok := req.CourseIDValue()
		if !ok {
			return ErrCourseDoesNotExist
		}
		exists, err = repos.CourseRepository.CourseExistsByID(ctx, courseID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCourseDoesNotExist
		}

		enrollment = &models.Enrollment{StudentID: studentID, CourseID: courseID}
		id, err := repos.EnrollmentRepository.CreateEnrollment(ctx, enrollment)
		if err != nil {
			return err
		}
		enrollment.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return []*models.Enrollment{enrollment}, nil
}

// DeleteEnrollment removes every enrollment of the student in the course
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, studentID, courseID int64) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.CourseRepository.CourseExistsByID(ctx, courseID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCourseDoesNotExist
		}

		exists, err = repos.StudentRepository.StudentExistsByID(ctx, studentID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrStudentDoesNotExist
		}

		enrollments, err := repos.EnrollmentRepository.GetEnrollmentsByStudentID(ctx, studentID)
		if err != nil {
			return err
		}
		if len(enrollments) == 0 {
			return apperrors.ErrResourceNotFound
		}

		_, err = repos.EnrollmentRepository.DeleteEnrollments(ctx, studentID, courseID)
		return err
	})
}
