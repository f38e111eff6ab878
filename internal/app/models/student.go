package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64   `json:"student_id" db:"student_id" example:"1"`
	RollNumber string  `json:"roll_number" db:"roll_number" example:"R1"` // Unique across all students
	FirstName  string  `json:"first_name" db:"first_name" example:"Ann"`
	LastName   *string `json:"last_name" db:"last_name"` // Nullable
}
