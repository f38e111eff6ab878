package services

import (
	"context"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetCourse(ctx context.Context, courseID int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, courseID int64, req *dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID int64) error
}

type courseServiceImpl struct {
	store *repositories.Store
}

// NewCourseService creates a new course service instance
func NewCourseService(store *repositories.Store) CourseService {
	return &courseServiceImpl{store: store}
}

func validateCourseRequest(req *dto.CourseRequest) error {
	if req.CourseName == nil {
		return ErrCourseNameRequired
	}
	if req.CourseCode == nil {
		return ErrCourseCodeRequired
	}
	return nil
}

// GetCourse retrieves a course by ID
func (s *courseServiceImpl) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	return s.store.Repos().CourseRepository.GetCourseByID(ctx, courseID)
}

// CreateCourse validates the request and inserts a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if err := validateCourseRequest(req); err != nil {
		return nil, err
	}

	course := &models.Course{
		Code:        req.CourseCode.String(),
		Name:        req.CourseName.String(),
		Description: req.CourseDescription.StringPtr(),
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.CourseRepository.CourseExistsByCode(ctx, course.Code)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrConflict
		}

		id, err := repos.CourseRepository.CreateCourse(ctx, course)
		if err != nil {
			return err
		}
		course.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// UpdateCourse overwrites every field of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, courseID int64, req *dto.CourseRequest) (*models.Course, error) {
	var course *models.Course
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.CourseRepository.CourseExistsByID(ctx, courseID)
		if err != nil {
			return err
		}
		if !exists {
			return repositories.ErrCourseNotFound
		}

		if err := validateCourseRequest(req); err != nil {
			return err
		}

		course = &models.Course{
			ID:          courseID,
			Code:        req.CourseCode.String(),
			Name:        req.CourseName.String(),
			Description: req.CourseDescription.StringPtr(),
		}
		return repos.CourseRepository.UpdateCourse(ctx, course)
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course. Enrollments that reference it are kept.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, courseID int64) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.CourseRepository.CourseExistsByID(ctx, courseID)
		if err != nil {
			return err
		}
		if !exists {
			return repositories.ErrCourseNotFound
		}
		return repos.CourseRepository.DeleteCourse(ctx, courseID)
	})
}
