package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// uniqueViolationOn : нарушение уникального ограничения constraint ("": любого)
func uniqueViolationOn(err error, constraint string) bool {
	pqErr, ok := pqErrorWithCode(err, uniqueViolation)
	return ok && (constraint == "" || pqErr.Constraint == constraint)
}

func foreignKeyViolationOn(err error) bool {
	_, ok := pqErrorWithCode(err, foreignKeyViolation)
	return ok
}

func pqErrorWithCode(err error, code pq.ErrorCode) (*pq.Error, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != code {
		return nil, false
	}
	return pqErr, true
}
