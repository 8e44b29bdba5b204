// Package classify implements the priority-ordered keyword classifier
// that maps location names to at most one category.
package classify

import (
	"strings"

	"github.com/tastesaigon/curator/internal/normalize"
)

// Rule binds one category slug to the keyword patterns that select it.
// Rules are evaluated in declaration order and the first rule with any
// matching keyword wins; keyword order within a rule is irrelevant.
// A name containing keywords from two rules is assigned to whichever
// rule is declared first, never to both.
type Rule struct {
	Category string
	Keywords []string
}

// Classifier evaluates an ordered rule list against location names.
// It is pure: classification has no side effects and a miss is an
// expected outcome, not an error.
type Classifier struct {
	rules []compiledRule
}

type compiledRule struct {
	category string
	keywords []string
}

// NewClassifier compiles the given rules, normalizing every keyword the
// same way names are normalized at match time. Empty keywords are
// dropped; a rule with no usable keywords can never match.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, rule := range rules {
		cr := compiledRule{category: rule.Category, keywords: make([]string, 0, len(rule.Keywords))}
		for _, kw := range rule.Keywords {
			if n := normalize.Keyword(kw); n != "" {
				cr.keywords = append(cr.keywords, n)
			}
		}
		c.rules = append(c.rules, cr)
	}
	return c
}

// Classify returns the category slug for name and true, or "" and false
// when no rule matches. An empty or blank name never matches.
func (c *Classifier) Classify(name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	padded := normalize.Padded(name)
	if strings.TrimSpace(padded) == "" {
		return "", false
	}
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(padded, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
