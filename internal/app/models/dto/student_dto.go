package dto

import "github.com/yigit/enrollment/internal/app/models"

// StudentRequest carries the fields accepted by student create and update.
// A nil pointer means the field was not supplied.
type StudentRequest struct {
	FirstName  *RawString `json:"first_name" form:"first_name" swaggertype:"string" example:"Ann"`
	LastName   *RawString `json:"last_name" form:"last_name" swaggertype:"string" example:"Lee"`
	RollNumber *RawString `json:"roll_number" form:"roll_number" swaggertype:"string" example:"R1"`
}

// StudentResponse is the wire representation of a student
type StudentResponse struct {
	StudentID  int64   `json:"student_id" example:"1"`
	FirstName  string  `json:"first_name" example:"Ann"`
	LastName   *string `json:"last_name" example:"Lee"`
	RollNumber string  `json:"roll_number" example:"R1"`
}

// NewStudentResponse maps a student model onto its response
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		StudentID:  student.ID,
		FirstName:  student.FirstName,
		LastName:   student.LastName,
		RollNumber: student.RollNumber,
	}
}
