// Package validator decides whether user supplied ledger fields can be
// committed. Every function here is pure.
package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

type Field string

const (
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldAmount   Field = "amount"
)

const (
	reasonName         = "Name should not be just numbers or empty."
	reasonNameCategory = "Name and Category should not be just numbers or empty."
	reasonAmount       = "Amount must be a valid number."
)

type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsNameError reports whether err rejected a name or category.
func IsNameError(err error) bool {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}
	return validationErr.Field == FieldName || validationErr.Field == FieldCategory
}

// IsAmountError reports whether err rejected an amount.
func IsAmountError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) && validationErr.Field == FieldAmount
}

// IsValidName rejects blank labels and labels made only of digits.
func IsValidName(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}

	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// ParseAmount parses a finite decimal number. Sign, fractional part and
// exponent are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, errors.New("empty amount")
	}

	// decimal rejects NaN and Inf representations on its own.
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, err
	}

	// Amounts are stored as REAL. The range is checked on the text, converting
	// a huge exponent through decimal expands it digit by digit.
	if _, err = strconv.ParseFloat(trimmed, 64); errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, fmt.Errorf("amount %s is out of range", trimmed)
	}

	return value, nil
}

func IsValidAmount(s string) bool {
	_, err := ParseAmount(s)
	return err == nil
}

// Validate applies the entry policy for a table and returns the record ready
// to be inserted. The first failing rule wins and amounts are checked last.
func Validate(table storage.Table, name, category, amount string) (storage.Record, error) {
	if table.HasCategory() {
		if !IsValidName(name) {
			return storage.Record{}, &ValidationError{Field: FieldName, Reason: reasonNameCategory}
		}
		if !IsValidName(category) {
			return storage.Record{}, &ValidationError{Field: FieldCategory, Reason: reasonNameCategory}
		}
	} else {
		if !IsValidName(name) {
			return storage.Record{}, &ValidationError{Field: FieldName, Reason: reasonName}
		}
		category = ""
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return storage.Record{}, &ValidationError{Field: FieldAmount, Reason: reasonAmount}
	}

	return storage.NewRecord(0, strings.TrimSpace(name), strings.TrimSpace(category), value), nil
}
