package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollment/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Enrollment *controllers.EnrollmentController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers) {
	// Unknown methods on a known path answer 405
	router.HandleMethodNotAllowed = true
	// Handlers pass *gin.Context down as context.Context; fall back to the
	// request context so client cancellation reaches the database
	router.ContextWithFallback = true

	api := router.Group("/api")

	// Student routes
	students := api.Group("/student")
	{
		students.POST("", c.Student.CreateStudent)
		students.GET("/:student_id", c.Student.GetStudent)
		students.PUT("/:student_id", c.Student.UpdateStudent)
		students.DELETE("/:student_id", c.Student.DeleteStudent)

		// Enrollment routes
		students.GET("/:student_id/course", c.Enrollment.ListEnrollments)
		students.POST("/:student_id/course", c.Enrollment.CreateEnrollment)
		students.DELETE("/:student_id/course/:course_id", c.Enrollment.DeleteEnrollment)
	}

	// Course routes
	courses := api.Group("/course")
	{
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:course_id", c.Course.GetCourse)
		courses.PUT("/:course_id", c.Course.UpdateCourse)
		courses.DELETE("/:course_id", c.Course.DeleteCourse)
	}

	// Health check endpoints
	api.GET("/health", c.Health.Health)
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
}

// SetupMetrics exposes Prometheus collectors at path
func SetupMetrics(router *gin.Engine, path string, handler http.Handler) {
	router.GET(path, gin.WrapH(handler))
}
