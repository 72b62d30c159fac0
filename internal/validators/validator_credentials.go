package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-playground/validator/v10"
)

// CredentialsValidator checks login payloads against their `validate` struct
// tags.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &CredentialsValidator{validate: v}
}

// Validate accepts [models.Credentials] by value or by pointer. When fields
// are given only those struct fields are checked.
func (u *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Credentials, *models.Credentials:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = u.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = u.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
