package sheet

import "strings"

// UnknownSender is the sentinel emitted when no field identifies who sent
// the transfer.
const UnknownSender = "SIN_EMISOR"

// SanitizeName removes every comma and trims surrounding whitespace.
// Commas would split a single logical cell across columns when the line
// is pasted into a spreadsheet.
func SanitizeName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, ",", ""))
}

// ResolveSender produces a non-empty sender identity for a receipt. The
// candidates are tried in order and the first non-empty one wins: the
// sanitized name, the operation id verbatim, the date and time pair, and
// finally the UnknownSender sentinel.
func ResolveSender(name, operationID, date, timeOfDay string) string {
	candidates := []func() string{
		func() string { return SanitizeName(name) },
		func() string { return operationID },
		func() string {
			if date != "" && timeOfDay != "" {
				return date + " " + timeOfDay
			}
			return ""
		},
	}

	for _, candidate := range candidates {
		if sender := candidate(); sender != "" {
			return sender
		}
	}
	return UnknownSender
}
