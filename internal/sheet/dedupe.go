package sheet

// DuplicateIDs scans a batch of operation ids in order and returns the
// ids that occur more than once. Empty ids are never tracked. Each
// duplicated id appears once in the result, at the position where its
// second occurrence was seen, so the output keeps confirmation order.
func DuplicateIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	reported := make(map[string]bool)

	var duplicates []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if seen[id] && !reported[id] {
			reported[id] = true
			duplicates = append(duplicates, id)
		}
		seen[id] = true
	}
	return duplicates
}
