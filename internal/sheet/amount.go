package sheet

import (
	"regexp"
	"strings"
	"unicode"
)

// currencyRunes holds the characters stripped before parsing an amount:
// the symbols $, USD, €, ARS expressed as a character set.
const currencyRunes = "$USD€ARS"

// decimalTail matches a separator followed by exactly two trailing
// digits, the only signal available to tell decimals from thousands.
var decimalTail = regexp.MustCompile(`[.,]\d{2}$`)

// NormalizeAmount canonicalizes a free-form monetary string: no currency
// symbols, no thousands separators, comma as the only decimal marker and
// no trailing ",00". It never fails; an empty input becomes "0".
//
// Disambiguation is a heuristic keyed on the trailing digit group. A
// string ending in a separator plus two digits has decimals; when both
// separators appear, the later one is the decimal marker. Anything else
// treats every separator as thousands noise, so "1.234" becomes "1234"
// even though it could plausibly mean one-point-two-three-four.
func NormalizeAmount(raw string) string {
	if raw == "" {
		return "0"
	}

	amount := strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencyRunes, r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if decimalTail.MatchString(amount) {
		hasPoint := strings.Contains(amount, ".")
		hasComma := strings.Contains(amount, ",")
		switch {
		case hasPoint && hasComma:
			if strings.LastIndex(amount, ".") > strings.LastIndex(amount, ",") {
				amount = strings.ReplaceAll(amount, ",", "")
				amount = strings.ReplaceAll(amount, ".", ",")
			} else {
				amount = strings.ReplaceAll(amount, ".", "")
			}
		case hasPoint:
			amount = strings.ReplaceAll(amount, ".", ",")
		}
	} else {
		amount = strings.ReplaceAll(amount, ".", "")
		amount = strings.ReplaceAll(amount, ",", "")
	}

	amount = strings.TrimSuffix(amount, ",00")

	return strings.TrimSpace(amount)
}
