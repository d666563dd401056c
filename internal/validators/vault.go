// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/stoa-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the Go field names of the validated structs.
const (
	FieldID        = "ID"
	FieldTitle     = "Title"
	FieldTags      = "Tags"
	FieldType      = "Type"
	FieldUserName  = "UserName"
	FieldTheme     = "Theme"
	FieldBirthDate = "BirthDate"
)

// VaultValidator implements [Validator] for notes and settings using the
// `validate` struct tags declared on the models.
type VaultValidator struct {
	validate *validator.Validate
}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks a models.Note or models.Settings (value or pointer). When
// fields are given only those fields are checked.
func (v *VaultValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var sentinel error

	switch val := value.(type) {
	case models.Note, *models.Note:
		sentinel = ErrInvalidNote
	case models.Settings, *models.Settings:
		sentinel = ErrInvalidSettings
	case nil:
		return ErrUnsupportedType
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, val)
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Errorf("%w: nil %T", sentinel, value)
	}

	if err := checkFields(value, fields); err != nil {
		return err
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}

	return wrapValidationErrors(sentinel, err)
}

func checkFields(value any, fields []string) error {
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t.Name(), f)
		}
	}
	return nil
}

func wrapValidationErrors(sentinel, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, ", "))
}
