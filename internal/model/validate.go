package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	})
	mustRegister(v, "nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	mustRegister(v, "cinema_epoch", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && !t.Before(CinemaEpoch)
	})
	mustRegister(v, "notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && !t.After(time.Now())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "notblank", "required":
		return field + " must not be blank"
	case "nowhitespace":
		return field + " must not contain whitespace"
	case "contains":
		return fmt.Sprintf("%s must contain %q", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "cinema_epoch":
		return fmt.Sprintf("%s must not be before %s", field, CinemaEpoch.Format(time.DateOnly))
	case "notfuture":
		return field + " must not be in the future"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func sortIDs(ids []int64) {
	slices.Sort(ids)
}
