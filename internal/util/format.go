package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	centsPlaces   = 2
	centsValue    = 100
	thousandValue = 1000
)

// FormatAmount renders an amount rounded to two places with a currency prefix
// and thousand separators, e.g. "₹12,345.67" or "-₹0.50".
func FormatAmount(amount decimal.Decimal, currency, thousand, decimalSep string) string {
	cents := amount.Round(centsPlaces).Shift(centsPlaces).IntPart()

	sign := ""
	if cents < 0 {
		cents *= -1
		sign = "-"
	}

	result := fmt.Sprintf("%s%02d", decimalSep, cents%centsValue)
	value := cents / centsValue

	// for each 3 digits put the thousand separator
	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, value%thousandValue, result)
		value /= thousandValue
	}

	return fmt.Sprintf("%s%s%d%s", sign, currency, value, result)
}
