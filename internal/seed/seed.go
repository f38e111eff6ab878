package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

// DefaultCourses is the demo catalogue created by CreateDefaultData
var DefaultCourses = []models.Course{
	{Code: "CS101", Name: "Programming Fundamentals", Description: strPtr("Variables, control flow and functions")},
	{Code: "CS102", Name: "Database Systems", Description: strPtr("Relational modelling and SQL")},
	{Code: "MA101", Name: "Linear Algebra", Description: strPtr("Vectors, matrices and linear maps")},
	{Code: "MA102", Name: "Statistics"},
}

// CreateDefaultData creates the demo courses that do not exist yet.
// Existing course codes are left untouched, so running it again is harmless.
func CreateDefaultData(ctx context.Context, store *repositories.Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Courses)...")
	var finalErr error // To collect potential errors without stopping the process
	created := 0

	for _, course := range DefaultCourses {
		err := store.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
			exists, err := repos.CourseRepository.CourseExistsByCode(ctx, course.Code)
			if err != nil || exists {
				return err
			}
			_, err = repos.CourseRepository.CreateCourse(ctx, &course)
			if err == nil {
				created++
			}
			return err
		})
		if err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return finalErr
}
