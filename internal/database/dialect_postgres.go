package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresDialect implements Dialect for the lib/pq driver.
type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (d *PostgresDialect) InitStatements() []string {
	return []string{
		// case-insensitive preset names
		"CREATE EXTENSION IF NOT EXISTS citext",
	}
}

func (d *PostgresDialect) PrimaryKey() string {
	return "BIGSERIAL PRIMARY KEY"
}

func (d *PostgresDialect) NameType() string {
	return "CITEXT"
}

// IsDuplicateKeyError matches SQLSTATE 23505 (unique_violation).
func (d *PostgresDialect) IsDuplicateKeyError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
