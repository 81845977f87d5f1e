package entity

import "strings"

// GeneralUserLabel describes a request with no recognised signal
const GeneralUserLabel = "일반 사용자"

// UserContext holds the preference and eligibility signals extracted from a free-text request
type UserContext struct {
	// Age is the representative age of the recognised bracket, nil when none matched
	Age      *int   `json:"age,omitempty"`
	AgeGroup string `json:"age_group"`

	Size      string `json:"size,omitempty"`
	Style     string `json:"style,omitempty"`
	Animation string `json:"animation,omitempty"`
	Layout    string `json:"layout,omitempty"`

	InsuranceInterests []string `json:"insurance_interests,omitempty"`
	PriceSensitivity   string   `json:"price_sensitivity,omitempty"`
	DetailLevel        string   `json:"detail_level,omitempty"`

	// Labels lists every matched label in evaluation order
	Labels []string `json:"labels,omitempty"`
}

func (c *UserContext) HasAge() bool {
	return c != nil && c.Age != nil
}

// Summary joins labels for prompt embedding
func (c *UserContext) Summary() string {
	if c == nil || len(c.Labels) == 0 {
		return GeneralUserLabel
	}
	return strings.Join(c.Labels, " | ")
}
