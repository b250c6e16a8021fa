// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

// Package validation validates decoded API requests with go-playground/validator v10.
//
// A single validator instance is shared by all handlers. Field names in error
// messages come from the `query` struct tag so clients see the parameter they
// sent (year_min, not YearMin).
//
//	req := validation.AnalyticsRequest{Regions: regions, YearMin: 2010, YearMax: 2022}
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, err)
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// CodeValidation is the APIError code of every failure reported here.
const CodeValidation = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one rejected request field. Field is the query parameter
// name, with an index suffix for list elements (regions[2]).
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError collects every field rejected in one request.
type RequestValidationError struct {
	Fields []FieldError
}

// NewRequestValidationError reports a parameter rejected before it reached
// the validator, such as a year that is not an integer.
func NewRequestValidationError(field, tag string, value interface{}, message string) *RequestValidationError {
	return &RequestValidationError{Fields: []FieldError{{
		Field:   field,
		Tag:     tag,
		Value:   value,
		Message: message,
	}}}
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// APIError is the transport-neutral shape of a validation failure; the api
// package copies it into models.APIError.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError flattens the failure for a 400 response. A single field keeps
// its own message; several are prefixed with their names and listed under
// details.fields.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.Fields) {
	case 0:
		return &APIError{Code: CodeValidation, Message: "Validation failed"}
	case 1:
		fe := ve.Fields[0]
		return &APIError{
			Code:    CodeValidation,
			Message: fe.Message,
			Details: map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "value": fe.Value},
		}
	}

	fields := make([]map[string]interface{}, len(ve.Fields))
	msgs := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		fields[i] = map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "message": fe.Message}
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return &APIError{
		Code:    CodeValidation,
		Message: strings.Join(msgs, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(queryTagName)
		if err := validate.RegisterValidation("region", validRegion); err != nil {
			panic(fmt.Sprintf("validation: register region validator: %v", err))
		}
	})
	return validate
}

func queryTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// maxRegionNameLen bounds a single region name in bytes.
const maxRegionNameLen = 200

// validRegion accepts non-blank names without control characters.
func validRegion(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.TrimSpace(s) == "" || len(s) > maxRegionNameLen {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// ValidateStruct runs the shared validator over s and returns nil when s is
// valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewRequestValidationError("", "invalid", nil, err.Error())
	}

	out := &RequestValidationError{Fields: make([]FieldError, len(fieldErrs))}
	for i, fe := range fieldErrs {
		out.Fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: describe(fe),
		}
	}
	return out
}

// describe renders a FieldError message for the tags used by request types.
func describe(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "region":
		return field + " must be a non-blank region name without control characters"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
