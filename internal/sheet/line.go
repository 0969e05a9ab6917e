package sheet

import "fmt"

// FormatLine renders the spreadsheet cell text for one receipt. Routed
// recipients get the quoted sender followed by eight commas, landing the
// amount in the ninth column for the special accounting route. Every
// other recipient, including an empty one, gets the bare amount.
func FormatLine(rules RuleSet, sender, amount, recipient string) string {
	if rules.Matches(recipient) {
		return fmt.Sprintf(`"%s",,,,,,,,%s`, sender, amount)
	}
	return amount
}
