package sheet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule routes a recipient when every one of its substrings appears in the
// recipient name. Matching is case-insensitive and deliberately loose: a
// substring match tolerates the OCR noise that full-name equality would
// trip over.
type Rule struct {
	All []string `yaml:"all"`
}

// RuleSet is the table of recipients whose receipts use the routed line
// format instead of the bare amount.
type RuleSet struct {
	Routed []Rule `yaml:"routed"`
}

// DefaultRules returns the built-in routing table.
func DefaultRules() RuleSet {
	return RuleSet{
		Routed: []Rule{
			{All: []string{"jessica", "giuliani"}},
			{All: []string{"credibank"}},
		},
	}
}

// LoadRules reads a routing table from a YAML file. Substrings are
// lowercased on load so matching stays case-insensitive.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules file: %w", err)
	}

	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules file: %w", err)
	}

	if len(rules.Routed) == 0 {
		return RuleSet{}, fmt.Errorf("rules file %s declares no routed rules", path)
	}
	for i, rule := range rules.Routed {
		if len(rule.All) == 0 {
			return RuleSet{}, fmt.Errorf("routed rule %d declares no substrings", i+1)
		}
		for j, substr := range rule.All {
			substr = strings.ToLower(strings.TrimSpace(substr))
			if substr == "" {
				return RuleSet{}, fmt.Errorf("routed rule %d has an empty substring", i+1)
			}
			rules.Routed[i].All[j] = substr
		}
	}

	return rules, nil
}

// Matches reports whether the recipient belongs to the routed set.
func (rs RuleSet) Matches(recipient string) bool {
	recipient = strings.ToLower(strings.TrimSpace(recipient))
	for _, rule := range rs.Routed {
		if rule.matches(recipient) {
			return true
		}
	}
	return false
}

func (r Rule) matches(recipient string) bool {
	if len(r.All) == 0 {
		return false
	}
	for _, substr := range r.All {
		if !strings.Contains(recipient, substr) {
			return false
		}
	}
	return true
}
