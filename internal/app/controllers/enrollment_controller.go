package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// EnrollmentController handles enrolling students in courses
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// ListEnrollments lists the enrollments of a student
// @Summary List a student's enrollments
// @Description A student without enrollments answers 404
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID" Format(int64)
// @Success 200 {array} dto.EnrollmentResponse "Enrollments retrieved successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Student does not exist"
// @Failure 404 "Student has no enrollments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{student_id}/course [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "student_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	enrollments, err := c.enrollmentService.ListEnrollments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentListResponse(enrollments))
}

// CreateEnrollment enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Enrolling twice in the same course creates a second enrollment
// @Tags enrollments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param student_id path int true "Student ID" Format(int64)
// @Param request body dto.EnrollmentRequest true "Course to enroll in"
// @Success 201 {array} dto.EnrollmentResponse "Enrollment created successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Course does not exist"
// @Failure 404 "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{student_id}/course [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "student_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	var req dto.EnrollmentRequest
	if err := bindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrollments, err := c.enrollmentService.CreateEnrollment(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnrollmentListResponse(enrollments))
}

// DeleteEnrollment removes a student's enrollments in a course
// @Summary Withdraw a student from a course
// @Tags enrollments
// @Param student_id path int true "Student ID" Format(int64)
// @Param course_id path int true "Course ID" Format(int64)
// @Success 200 "Enrollments deleted successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Course or student does not exist"
// @Failure 404 "Student has no enrollments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{student_id}/course/{course_id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "student_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}
