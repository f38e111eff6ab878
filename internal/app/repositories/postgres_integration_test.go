//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yigit/enrollment/internal/app/migrations"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

const (
	postgresImage         = "postgres:16-alpine"
	postgresPort          = "5432/tcp"
	containerStartTimeout = 120 * time.Second
)

func setupPostgres(t *testing.T) *db.Database {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_USER":     "enrollment",
				"POSTGRES_PASSWORD": "enrollment",
				"POSTGRES_DB":       "enrollment_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(containerStartTimeout),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate Postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Database.Driver = config.DriverPostgres
	cfg.Database.Host = host
	cfg.Database.Port = mappedPort.Port()
	cfg.Database.User = "enrollment"
	cfg.Database.Password = "enrollment"
	cfg.Database.DBName = "enrollment_test"

	database, err := db.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.NewMigrator(database, zerolog.Nop()).Migrate(ctx))
	return database
}

func TestPostgres_Repositories(t *testing.T) {
	ctx := context.Background()
	database := setupPostgres(t)
	assert.Equal(t, squirrel.Dollar, database.Placeholder())

	store := NewStore(database)
	repos := store.Repos()

	studentID, err := repos.StudentRepository.CreateStudent(ctx, &models.Student{RollNumber: "R1", FirstName: "Ann"})
	require.NoError(t, err)

	_, err = repos.StudentRepository.CreateStudent(ctx, &models.Student{RollNumber: "R1", FirstName: "Bob"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	courseID, err := repos.CourseRepository.CreateCourse(ctx, &models.Course{Code: "C1", Name: "Algebra"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := repos.EnrollmentRepository.CreateEnrollment(ctx, &models.Enrollment{StudentID: studentID, CourseID: courseID})
		require.NoError(t, err)
	}

	require.NoError(t, repos.CourseRepository.DeleteCourse(ctx, courseID))
	enrollments, err := repos.EnrollmentRepository.GetEnrollmentsByStudentID(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 2)

	err = store.WithTransaction(ctx, func(ctx context.Context, repos *Repositories) error {
		if _, err := repos.EnrollmentRepository.DeleteEnrollmentsByStudentID(ctx, studentID); err != nil {
			return err
		}
		return repos.StudentRepository.DeleteStudent(ctx, studentID)
	})
	require.NoError(t, err)

	enrollments, err = repos.EnrollmentRepository.GetEnrollmentsByStudentID(ctx, studentID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	// Migrations are recorded once per version
	require.NoError(t, migrations.NewMigrator(database, zerolog.Nop()).Migrate(ctx))
}
