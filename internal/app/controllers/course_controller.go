package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourse retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.CourseResponse "Course retrieved successfully"
// @Failure 404 "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "course_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course. course_code must be unique.
// @Tags courses
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse "Course created successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Required field missing"
// @Failure 409 "Course code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := bindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// UpdateCourse replaces an existing course
// @Summary Update a course
// @Description Overwrites every field of the course. An absent course_description is cleared.
// @Tags courses
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param course_id path int true "Course ID" Format(int64)
// @Param request body dto.CourseRequest true "Updated course information"
// @Success 200 {object} dto.CourseResponse "Course updated successfully"
// @Failure 400 {object} dto.MissingFieldResponse "Required field missing"
// @Failure 404 "Course not found"
// @Failure 409 "Course code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course/{course_id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "course_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	var req dto.CourseRequest
	if err := bindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes the course. Enrollments referencing it are kept.
// @Tags courses
// @Param course_id path int true "Course ID" Format(int64)
// @Success 200 "Course deleted successfully"
// @Failure 404 "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course/{course_id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "course_id")
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}
