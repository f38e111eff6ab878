package repositories

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/enrollment/internal/db"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so every repository can
// run either directly on the pool or inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories holds all the repository instances bound to one Querier
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories on q
func NewRepositories(q Querier, placeholder squirrel.PlaceholderFormat) *Repositories {
	sb := squirrel.StatementBuilder.PlaceholderFormat(placeholder)
	return &Repositories{
		StudentRepository:    NewStudentRepository(q, sb),
		CourseRepository:     NewCourseRepository(q, sb),
		EnrollmentRepository: NewEnrollmentRepository(q, sb),
	}
}

// Store is the persistence handle injected into services. Reads outside a
// transaction use Repos; multi-step mutations go through WithTransaction.
type Store struct {
	database *db.Database
	repos    *Repositories
}

// NewStore creates a Store on an open database
func NewStore(database *db.Database) *Store {
	return &Store{
		database: database,
		repos:    NewRepositories(database.DB, database.Placeholder()),
	}
}

// Repos returns repositories bound to the connection pool
func (s *Store) Repos() *Repositories {
	return s.repos
}

// TxFn is run with repositories bound to a single transaction
type TxFn func(ctx context.Context, repos *Repositories) error

// WithTransaction runs fn in one transaction; any error rolls back every write fn made
func (s *Store) WithTransaction(ctx context.Context, fn TxFn) error {
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, NewRepositories(tx, s.database.Placeholder()))
	})
}
