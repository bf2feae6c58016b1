package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "check", err: pgError(pgerrcode.CheckViolation), want: CheckViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: NotNullViolation},
		{name: "connection", err: pgError(pgerrcode.ConnectionFailure), want: Unclassified},
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
		want ErrorClass
	}{
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: ForeignKeyViolation},
		{name: "check", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, want: CheckViolation},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_Classify(t *testing.T) {
	db, _ := newMockDB(t)
	sentinel := errors.New("taken")

	assert.NoError(t, db.classify(nil, sentinel))
	assert.ErrorIs(t, db.classify(pgError(pgerrcode.UniqueViolation), sentinel), sentinel)
	assert.ErrorIs(t, db.classify(pgError(pgerrcode.UniqueViolation), nil), ErrExecutingQuery)
	assert.ErrorIs(t, db.classify(pgError(pgerrcode.ForeignKeyViolation), sentinel), ErrReferenceViolation)
	assert.ErrorIs(t, db.classify(pgError(pgerrcode.CheckViolation), sentinel), ErrCheckViolation)
	assert.ErrorIs(t, db.classify(errors.New("network"), sentinel), ErrExecutingQuery)
}
