package gorm

import (
	"errors"
	"strings"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	return err != nil && !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}

// IsDuplicated reports whether err is a uniqueness violation. The connection
// opens gorm with TranslateError, so both the postgres and sqlite drivers
// surface duplicates as gorm.ErrDuplicatedKey; the SQLSTATE check covers raw
// driver errors from Exec paths.
func IsDuplicated(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "SQLSTATE 23505") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolated reports whether err is a referential-integrity
// violation, e.g. a comment pointing at a post id that does not exist.
func IsForeignKeyViolated(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "SQLSTATE 23503") ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsConstraintViolation groups the two write-rejection classes: uniqueness
// and referential integrity. Either way the write failed atomically.
func IsConstraintViolation(err error) bool {
	return IsDuplicated(err) || IsForeignKeyViolated(err)
}
