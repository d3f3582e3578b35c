package infra_pg_errors

import (
	"errors"
	"fmt"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Map translates constraint violations into domain errors and leaves anything
// else untouched.
func Map(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", model.ErrAlreadyExists, pqErr.Constraint)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", model.ErrNotFound, pqErr.Constraint)
	case checkViolation:
		return fmt.Errorf("%w: %s", model.ErrInvalidArgument, pqErr.Constraint)
	}
	return err
}
