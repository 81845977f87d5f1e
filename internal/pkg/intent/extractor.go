package intent

import (
	"slices"
	"strings"

	"github.com/charole/auto-ux-backend/internal/entity"
)

// Extractor derives a UserContext from free text using an ordered rule table
type Extractor struct {
	groups []RuleGroup
}

func NewExtractor(groups []RuleGroup) *Extractor {
	return &Extractor{groups: groups}
}

func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultRules)
}

// Extract never fails. Empty input yields the general user context.
func (e *Extractor) Extract(text string) *entity.UserContext {
	uc := &entity.UserContext{AgeGroup: DefaultAgeGroup}

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return uc
	}

	for _, group := range e.groups {
		matched := matchGroup(group, normalized)
		if len(matched) == 0 {
			continue
		}
		apply(uc, group, matched)
	}

	return uc
}

// SearchTerms returns the catalog search keywords of the insurance types in uc
func (e *Extractor) SearchTerms(uc *entity.UserContext) []string {
	if uc == nil || len(uc.InsuranceInterests) == 0 {
		return nil
	}

	terms := make([]string, 0, len(uc.InsuranceInterests))
	for _, group := range e.groups {
		if group.Dimension != DimensionInsuranceType {
			continue
		}
		for _, rule := range group.Rules {
			if rule.SearchTerm != "" && slices.Contains(uc.InsuranceInterests, rule.Label) {
				terms = append(terms, rule.SearchTerm)
			}
		}
	}
	return terms
}

func matchGroup(group RuleGroup, text string) []Rule {
	var matched []Rule
	for _, rule := range group.Rules {
		if !matchesAny(text, rule.Keywords) {
			continue
		}
		matched = append(matched, rule)
		if !group.MultiMatch {
			break
		}
	}
	return matched
}

func apply(uc *entity.UserContext, group RuleGroup, matched []Rule) {
	labels := make([]string, 0, len(matched))
	for _, rule := range matched {
		labels = append(labels, rule.Label)
	}

	first := matched[0]
	switch group.Dimension {
	case DimensionAge:
		age := first.Age
		uc.Age = &age
		uc.AgeGroup = first.Label
	case DimensionSize:
		uc.Size = first.Label
	case DimensionStyle:
		uc.Style = first.Label
	case DimensionAnimation:
		uc.Animation = first.Label
	case DimensionLayout:
		uc.Layout = first.Label
	case DimensionInsuranceType:
		uc.InsuranceInterests = append(uc.InsuranceInterests, labels...)
	case DimensionPrice:
		uc.PriceSensitivity = first.Label
	case DimensionDetail:
		uc.DetailLevel = first.Label
	}

	label := strings.Join(labels, ", ")
	if group.Prefix != "" {
		label = group.Prefix + ": " + label
	}
	uc.Labels = append(uc.Labels, label)
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
