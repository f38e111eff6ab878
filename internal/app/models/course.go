package models

// Course represents a course students can enroll in.
type Course struct {
	ID          int64   `json:"course_id" db:"course_id"`
	Code        string  `json:"course_code" db:"course_code"` // Unique across all courses
	Name        string  `json:"course_name" db:"course_name"`
	Description *string `json:"course_description" db:"course_description"` // Nullable
}
