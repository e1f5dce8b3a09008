package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup, update or delete target is absent
	ErrNotFound = errors.New("record not found")
	// ErrIO is returned when a table cannot be written or is corrupt
	ErrIO = errors.New("table i/o failure")
	// ErrValidation is returned when input breaks a business rule
	ErrValidation = errors.New("validation failed")
)

// Validation rules
const (
	RuleQuantityPositive  = "quantity_positive"
	RuleQuantityNumeric   = "quantity_numeric"
	RuleIDNumeric         = "id_numeric"
	RulePriceNumeric      = "price_numeric"
	RulePriceNonNegative  = "price_non_negative"
	RuleCashCoversPayable = "cash_covers_payable"
	RuleCashNumeric       = "cash_numeric"
	RuleFieldLength       = "field_length"
	RuleRequired          = "required"
)

// ValidationError names the rule an input failed
type ValidationError struct {
	Rule string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid builds a ValidationError for rule
func Invalid(rule, format string, args ...interface{}) error {
	return &ValidationError{Rule: rule, Msg: fmt.Sprintf(format, args...)}
}

// RuleOf returns the failed rule of err, or "" if err is not a validation error
func RuleOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Rule
	}
	return ""
}
