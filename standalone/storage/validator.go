package storage

import (
	"fmt"
	"sort"
)

// ChoiceRule describes the allowed values of a string preference.
type ChoiceRule struct {
	Key     string
	Values  []string
	Default string
}

// ValidateChoices checks string prefs against their allowed values and
// returns human-readable error descriptions, sorted by key. Absent keys
// are valid. An empty slice means every value is allowed.
func ValidateChoices(p *Prefs, rules []ChoiceRule) []string {
	var errors []string
	for _, rule := range rules {
		if !p.Contains(rule.Key) {
			continue
		}
		v := p.GetString(rule.Key, "")
		if !containsString(rule.Values, v) {
			errors = append(errors, fmt.Sprintf("%s: %q (valid: %q)", rule.Key, v, rule.Values))
		}
	}
	sort.Strings(errors)
	return errors
}

// CorrectChoices resets any pref holding a value outside its rule to the
// rule's default. Valid values are left alone. Returns the corrected keys.
func CorrectChoices(p *Prefs, rules []ChoiceRule) ([]string, error) {
	var corrected []string
	for _, rule := range rules {
		if !p.Contains(rule.Key) {
			continue
		}
		if containsString(rule.Values, p.GetString(rule.Key, "")) {
			continue
		}
		if err := p.PutString(rule.Key, rule.Default); err != nil {
			return corrected, err
		}
		corrected = append(corrected, rule.Key)
	}
	return corrected, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
