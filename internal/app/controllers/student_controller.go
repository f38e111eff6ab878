package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudent retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a student by its ID
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID" Format(int64)
// @Success 200 {object} dto.StudentResponse "Student retrieved successfully"
// @Failure 404 "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "student_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	student, err := c.studentService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student. roll_number must be unique.
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Required field missing"
// @Failure 409 "Roll number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := bindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStudentResponse(student))
}

// UpdateStudent replaces an existing student
// @Summary Update a student
// @Description Overwrites every field of the student. An absent last_name is cleared.
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param student_id path int true "Student ID" Format(int64)
// @Param request body dto.StudentRequest true "Updated student information"
// @Success 200 {object} dto.StudentResponse "Student updated successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Required field missing"
// @Failure 404 "Student not found"
// @Failure 409 "Roll number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{student_id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "student_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	var req dto.StudentRequest
	if err := bindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// DeleteStudent deletes a student and its enrollments
// @Summary Delete a student
// @Description Deletes the student together with all of its enrollments
// @Tags students
// @Param student_id path int true "Student ID" Format(int64)
// @Success 200 "Student deleted successfully"
// @Failure 404 "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{student_id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "student_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}
