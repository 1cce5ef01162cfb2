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
	"github.com/shopspring/decimal"
)

// PayloadValidator validates models by their validate tags.
type PayloadValidator struct {
	v *validator.Validate
}

// NewPayloadValidator returns a ready [PayloadValidator]. Decimal amounts
// are compared as floats, so tags like gt=0 work on prices.
func NewPayloadValidator() *PayloadValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(fieldName)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &PayloadValidator{v: v}
}

// Validate implements [Validator]. With fields, only those struct fields
// (by Go name, dotted for nesting) are checked.
func (p *PayloadValidator) Validate(_ context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = p.v.StructPartial(obj, fields...)
	} else {
		err = p.v.Struct(obj)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(msgs, "; "))
}

// fieldName picks the form tag, then the json tag, then the lowercased Go
// name of a struct field.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			break
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
