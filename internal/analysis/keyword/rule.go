// Package keyword holds the ordered keyword tables behind every canned reply.
// Matching is substring based on lower-cased text; a word such as "hi" also
// matches "this", which callers accept.
package keyword

import "strings"

// Predicate reports whether lower-cased text matches a rule.
type Predicate func(text string) bool

// Rule pairs a predicate with the category and reply it selects.
type Rule struct {
	Category string
	Reply    string
	Match    Predicate
}

// Table is evaluated top to bottom; earlier rules win.
type Table []Rule

// Dispatch returns the first rule whose predicate matches text.
func Dispatch(table Table, text string) (Rule, bool) {
	normalized := strings.ToLower(text)
	for _, rule := range table {
		if rule.Match == nil || rule.Match(normalized) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Any matches when text contains at least one of the words.
func Any(words ...string) Predicate {
	return func(text string) bool {
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
		return false
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(text string) bool {
		for _, pred := range preds {
			if !pred(text) {
				return false
			}
		}
		return true
	}
}

// Render substitutes {name} and {reason} placeholders in a reply.
func Render(reply, name, reason string) string {
	return strings.NewReplacer("{name}", name, "{reason}", reason).Replace(reply)
}
