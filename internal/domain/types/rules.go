package types

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// RuleCategory groups site rules.
type RuleCategory string

const (
	RuleGeneral RuleCategory = "general"
	RuleCamping RuleCategory = "camping"
	RuleFishing RuleCategory = "fishing"
)

// ParseRuleCategory maps s to a known category, defaulting to RuleGeneral.
func ParseRuleCategory(s string) RuleCategory {
	switch c := RuleCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case RuleGeneral, RuleCamping, RuleFishing:
		return c
	default:
		return RuleGeneral
	}
}

// SiteRule is one house rule shown on the contact screen.
type SiteRule struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    RuleCategory `json:"category"`
	Order       int          `json:"order"`
}

// Rules is the display-ordered rule list.
type Rules []SiteRule

// Normalize defaults categories, rejects missing or duplicate ids and
// sorts by order with ties broken by id. A null list is rejected; an empty
// one is valid.
func (rs *Rules) Normalize() error {
	if *rs == nil {
		return errors.New("rules: list is null")
	}
	seen := make(map[string]struct{}, len(*rs))
	for i := range *rs {
		r := &(*rs)[i]
		if r.ID == "" {
			return fmt.Errorf("rules: entry %d has no id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("rules: duplicate id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
		r.Category = ParseRuleCategory(string(r.Category))
	}
	slices.SortStableFunc(*rs, func(a, b SiteRule) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return nil
}

// Clone returns a copy that shares nothing with rs.
func (rs Rules) Clone() Rules {
	if rs == nil {
		return nil
	}
	return slices.Clone(rs)
}

// InCategory returns the rules of category c in display order.
func (rs Rules) InCategory(c RuleCategory) Rules {
	var out Rules
	for _, r := range rs {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}
