package sheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CheckFields returns advisory warnings for field values that do not
// parse: a canonical amount that is not a number, a non-empty date not in
// YYYY-MM-DD form, a non-empty time not in HH:MM:SS or HH:MM form.
// Warnings are presentation-only and never change how a receipt is
// formatted or ordered.
func CheckFields(amount, date, timeOfDay string) []string {
	var warnings []string

	if _, err := decimal.NewFromString(strings.ReplaceAll(amount, ",", ".")); err != nil {
		warnings = append(warnings, fmt.Sprintf("monto no numérico: %q", amount))
	}

	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			warnings = append(warnings, fmt.Sprintf("fecha no válida: %q", date))
		}
	}

	if timeOfDay != "" {
		if _, err := time.Parse("15:04:05", timeOfDay); err != nil {
			if _, err := time.Parse("15:04", timeOfDay); err != nil {
				warnings = append(warnings, fmt.Sprintf("horario no válido: %q", timeOfDay))
			}
		}
	}

	return warnings
}
