package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/testdb"
)

func TestCreateDefaultData_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore(testdb.New(t))

	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))

	for i, course := range DefaultCourses {
		got, err := store.Repos().CourseRepository.GetCourseByID(ctx, int64(i+1))
		require.NoError(t, err)
		assert.Equal(t, course.Code, got.Code)
	}

	_, err := store.Repos().CourseRepository.GetCourseByID(ctx, int64(len(DefaultCourses)+1))
	assert.Error(t, err)
}
