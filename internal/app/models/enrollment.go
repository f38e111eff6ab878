package models

// Enrollment links one student to one course. The same pair may appear more than once.
type Enrollment struct {
	ID        int64 `json:"enrollment_id" db:"enrollment_id"`
	StudentID int64 `json:"student_id" db:"student_id"`
	CourseID  int64 `json:"course_id" db:"course_id"`
}
