package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/movies?sslmode=disable", migrateURL("postgres://u:p@db:5432/movies?sslmode=disable"))
	assert.Equal(t, "pgx5://u:p@db/movies", migrateURL("postgresql://u:p@db/movies"))
	assert.Equal(t, "pgx5://u:p@db/movies", migrateURL("pgx5://u:p@db/movies"))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
