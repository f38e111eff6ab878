package dto

import "github.com/yigit/enrollment/internal/app/models"

// EnrollmentRequest carries the course a student is enrolled in
type EnrollmentRequest struct {
	CourseID *RawString `json:"course_id" form:"course_id" swaggertype:"integer" example:"1"`
}

// CourseIDValue returns the requested course id, or false when it is absent or not an integer
func (r *EnrollmentRequest) CourseIDValue() (int64, bool) {
	if r == nil {
		return 0, false
	}
	return r.CourseID.Int64()
}

// EnrollmentResponse is the wire representation of an enrollment
type EnrollmentResponse struct {
	EnrollmentID int64 `json:"enrollment_id" example:"1"`
	StudentID    int64 `json:"student_id" example:"1"`
	CourseID     int64 `json:"course_id" example:"1"`
}

// NewEnrollmentListResponse maps enrollments onto their responses, preserving order
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	resp := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		resp = append(resp, EnrollmentResponse{
			EnrollmentID: e.ID,
			StudentID:    e.StudentID,
			CourseID:     e.CourseID,
		})
	}
	return resp
}
