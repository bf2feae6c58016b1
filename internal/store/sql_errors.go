package store

// ErrorClass is the result of [ErrorClassificator.Classify]. It tells the
// repositories which integrity constraint, if any, rejected a statement.
type ErrorClass int

const (
	// Unclassified covers every error that is not a known constraint
	// violation: connectivity failures, syntax errors, timeouts.
	Unclassified ErrorClass = iota

	// UniqueViolation is a duplicate key on a unique index.
	UniqueViolation

	// ForeignKeyViolation is a reference to a missing parent row.
	ForeignKeyViolation

	// CheckViolation is a row rejected by a CHECK constraint.
	CheckViolation

	// NotNullViolation is a NULL written to a NOT NULL column.
	NotNullViolation
)

// ErrorClassificator maps driver specific errors onto [ErrorClass] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
