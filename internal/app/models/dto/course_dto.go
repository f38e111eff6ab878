package dto

import "github.com/yigit/enrollment/internal/app/models"

// CourseRequest carries the fields accepted by course create and update.
// A nil pointer means the field was not supplied.
type CourseRequest struct {
	CourseName        *RawString `json:"course_name" form:"course_name" swaggertype:"string" example:"Algebra"`
	CourseCode        *RawString `json:"course_code" form:"course_code" swaggertype:"string" example:"C1"`
	CourseDescription *RawString `json:"course_description" form:"course_description" swaggertype:"string" example:"Linear equations"`
}

// CourseResponse is the wire representation of a course
type CourseResponse struct {
	CourseID          int64   `json:"course_id" example:"1"`
	CourseName        string  `json:"course_name" example:"Algebra"`
	CourseCode        string  `json:"course_code" example:"C1"`
	CourseDescription *string `json:"course_description" example:"Linear equations"`
}

// NewCourseResponse maps a course model onto its response
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		CourseID:          course.ID,
		CourseName:        course.Name,
		CourseCode:        course.Code,
		CourseDescription: course.Description,
	}
}
