package models

import "strings"

// Fallback labels for fields the analysis service left out.
const (
	FallbackTitle   = "No title"
	FallbackCompany = "Unknown"
)

// Result is the analysis returned for one résumé.
// Skills keep response order and may contain duplicates.
type Result struct {
	Profession string     `json:"profession,omitempty" yaml:"profession,omitempty"`
	Skills     []string   `json:"skills" yaml:"skills"`
	Matches    []JobMatch `json:"matches" yaml:"matches"`
}

// JobMatch is one ranked job posting. The service response is loosely typed,
// so every field is optional.
type JobMatch struct {
	Title         *string        `json:"title,omitempty" yaml:"title,omitempty"`
	Company       *string        `json:"company,omitempty" yaml:"company,omitempty"`
	MatchedSkills []string       `json:"matched_skills,omitempty" yaml:"matched_skills,omitempty"`
	URL           *string        `json:"url,omitempty" yaml:"url,omitempty"`
	Raw           map[string]any `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Normalize replaces nil sequences with empty ones so callers never see nil.
func (r *Result) Normalize() {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Matches == nil {
		r.Matches = []JobMatch{}
	}
	for i := range r.Matches {
		r.Matches[i].Normalize()
	}
}

// Normalize replaces a nil MatchedSkills with an empty slice.
func (m *JobMatch) Normalize() {
	if m.MatchedSkills == nil {
		m.MatchedSkills = []string{}
	}
}

// DisplayTitle returns the title or FallbackTitle.
func (m JobMatch) DisplayTitle() string {
	if s := deref(m.Title); s != "" {
		return s
	}
	return FallbackTitle
}

// DisplayCompany returns the company, then raw.company, then FallbackCompany.
func (m JobMatch) DisplayCompany() string {
	if s := deref(m.Company); s != "" {
		return s
	}
	if s := m.rawString("company"); s != "" {
		return s
	}
	return FallbackCompany
}

// ApplyURL returns the top-level url, then raw.apply_url.
// ok is false when neither is present; callers must not render a link then.
func (m JobMatch) ApplyURL() (url string, ok bool) {
	if s := deref(m.URL); s != "" {
		return s, true
	}
	if s := m.rawString("apply_url"); s != "" {
		return s, true
	}
	return "", false
}

// rawString reads a string field from the nested raw posting.
// Non-string values count as absent.
func (m JobMatch) rawString(key string) string {
	if m.Raw == nil {
		return ""
	}
	s, _ := m.Raw[key].(string)
	return strings.TrimSpace(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
