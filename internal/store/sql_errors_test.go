package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: extended}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: Unclassified},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: sqliteError(sqlite3.ErrConstraintUnique), want: UniqueViolation},
		{name: "primary key", err: sqliteError(sqlite3.ErrConstraintPrimaryKey), want: UniqueViolation},
		{name: "foreign key", err: sqliteError(sqlite3.ErrConstraintForeignKey), want: ForeignKeyViolation},
		{name: "not null", err: sqliteError(sqlite3.ErrConstraintNotNull), want: Unclassified},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_StatementError(t *testing.T) {
	db := newDB(nil, config.DriverPostgres, logger.Nop())

	assert.ErrorIs(t, db.statementError(pgError(pgerrcode.UniqueViolation)), ErrAlreadyExists)
	assert.ErrorIs(t, db.statementError(pgError(pgerrcode.ForeignKeyViolation)), ErrReferenceNotFound)

	err := db.statementError(errors.New("connection reset"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "data.db", want: "data.db?_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "file:data.db?cache=shared", want: "file:data.db?cache=shared&_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "data.db?_fk=1&_busy_timeout=100", want: "data.db?_fk=1&_busy_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}
