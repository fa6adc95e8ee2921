// Package apiutil holds the form-field validation rules shared by the create
// and edit paths of every report form.
package apiutil

import (
	"database/sql"
	"strconv"
	"strings"
)

// FieldLabel converts a form field name to its display label:
// "jersey_number" -> "Jersey Number".
func FieldLabel(field string) string {
	words := strings.Split(field, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// RequireText validates a required text field. A missing value records an
// error; the trimmed value is returned either way.
func RequireText(raw, field string, errs *[]string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*errs = append(*errs, FieldLabel(field)+" is required.")
	}
	return raw
}

// OptionalText maps an optional text field to its nullable column value.
// Empty input stays NULL.
func OptionalText(raw string) sql.NullString {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}

// OptionalNonNegativeInt parses an optional non-negative integer field.
// Empty input stays NULL. A value that does not parse, or parses negative,
// records an error and stays NULL; any recorded error blocks the whole save.
func OptionalNonNegativeInt(raw, field string, errs *[]string) sql.NullInt64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullInt64{}
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*errs = append(*errs, FieldLabel(field)+" must be a valid number.")
		return sql.NullInt64{}
	}
	if value < 0 {
		*errs = append(*errs, FieldLabel(field)+" must be a non-negative number.")
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: value, Valid: true}
}

// OptionalNonNegativeFloat parses an optional non-negative decimal field with
// the same empty/invalid/negative rules as OptionalNonNegativeInt.
func OptionalNonNegativeFloat(raw, field string, errs *[]string) sql.NullFloat64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullFloat64{}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, FieldLabel(field)+" must be a valid number.")
		return sql.NullFloat64{}
	}
	if value < 0 {
		*errs = append(*errs, FieldLabel(field)+" must be a non-negative number.")
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: value, Valid: true}
}
