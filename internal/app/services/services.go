package services

import "github.com/yigit/enrollment/internal/pkg/apperrors"

// Services defined in this package:
// - StudentService: Handles operations related to students
// - CourseService: Handles operations related to courses
// - EnrollmentService: Handles enrolling students in courses

// Missing field errors. Each carries the error code and message returned to clients.
var (
	ErrRollNumberRequired  = apperrors.NewMissingFieldError("STUDENT001", "Roll Number is required")
	ErrFirstNameRequired   = apperrors.NewMissingFieldError("STUDENT002", "First Name is required")
	ErrCourseNameRequired  = apperrors.NewMissingFieldError("COURSE001", "Course Name is required")
	ErrCourseCodeRequired  = apperrors.NewMissingFieldError("COURSE002", "Course Code is required")
	ErrCourseDoesNotExist  = apperrors.NewMissingFieldError("ENROLLMENT001", "Course does not exist")
	ErrStudentDoesNotExist = apperrors.NewMissingFieldError("ENROLLMENT002", "Student does not exist.")
)

// Services bundles every service the HTTP layer depends on
type Services struct {
	StudentService    StudentService
	CourseService     CourseService
	EnrollmentService EnrollmentService
}
