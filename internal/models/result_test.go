package models

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestJobMatchDisplayTitle(t *testing.T) {
	tests := []struct {
		name  string
		title *string
		want  string
	}{
		{"present", strPtr("Backend Engineer"), "Backend Engineer"},
		{"absent", nil, FallbackTitle},
		{"empty", strPtr(""), FallbackTitle},
		{"whitespace", strPtr("   "), FallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JobMatch{Title: tt.title}.DisplayTitle()
			if got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobMatchDisplayCompany(t *testing.T) {
	tests := []struct {
		name  string
		match JobMatch
		want  string
	}{
		{"top-level wins", JobMatch{Company: strPtr("Acme"), Raw: map[string]any{"company": "Other"}}, "Acme"},
		{"raw fallback", JobMatch{Raw: map[string]any{"company": "Globex"}}, "Globex"},
		{"raw non-string ignored", JobMatch{Raw: map[string]any{"company": 42.0}}, FallbackCompany},
		{"nothing", JobMatch{}, FallbackCompany},
		{"empty top-level falls through", JobMatch{Company: strPtr(""), Raw: map[string]any{"company": "Initech"}}, "Initech"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match.DisplayCompany(); got != tt.want {
				t.Errorf("DisplayCompany() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobMatchApplyURL(t *testing.T) {
	tests := []struct {
		name   string
		match  JobMatch
		want   string
		wantOK bool
	}{
		{"top-level url", JobMatch{URL: strPtr("https://jobs.example/1")}, "https://jobs.example/1", true},
		{"raw apply_url", JobMatch{Raw: map[string]any{"apply_url": "https://apply.example/2"}}, "https://apply.example/2", true},
		{"top-level preferred", JobMatch{URL: strPtr("https://a"), Raw: map[string]any{"apply_url": "https://b"}}, "https://a", true},
		{"absent", JobMatch{}, "", false},
		{"raw without apply_url", JobMatch{Raw: map[string]any{"url_original": "https://c"}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.match.ApplyURL()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ApplyURL() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResultNormalize(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{"matches":[{"title":"Dev"}]}`), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	r.Normalize()

	if r.Skills == nil || len(r.Skills) != 0 {
		t.Errorf("Skills = %#v, want empty non-nil slice", r.Skills)
	}
	if len(r.Matches) != 1 {
		t.Fatalf("Matches len = %d, want 1", len(r.Matches))
	}
	if r.Matches[0].MatchedSkills == nil {
		t.Errorf("MatchedSkills should be normalized to an empty slice")
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", ".pdf"},
		{"Resume.PDF", ".pdf"},
		{"cv.final.TXT", ".txt"},
		{"resume", ""},
		{"resume.docx", ".docx"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FileExtension(tt.in); got != tt.want {
				t.Errorf("FileExtension(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCandidateDescribe(t *testing.T) {
	if got := NewFileCandidate("cv.pdf", []byte("x")).Describe(); got != "cv.pdf" {
		t.Errorf("file Describe() = %q", got)
	}
	if got := NewTextCandidate("  Go, SQL  ").Describe(); got != "pasted text (7 chars)" {
		t.Errorf("text Describe() = %q", got)
	}
	var c *Candidate
	if got := c.Describe(); got != "nothing" {
		t.Errorf("nil Describe() = %q", got)
	}
}

func TestResultUnmarshalCoercesLooseFields(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		title      string
		company    string
		skills     []string
		matched    []string
		profession string
	}{
		{
			name:    "numeric title",
			body:    `{"matches":[{"title":42}]}`,
			title:   "42",
			company: FallbackCompany,
		},
		{
			name:    "object company",
			body:    `{"matches":[{"company":{"name":"Acme"}}]}`,
			title:   FallbackTitle,
			company: FallbackCompany,
		},
		{
			name:    "string raw",
			body:    `{"matches":[{"title":"Dev","raw":"x"}]}`,
			title:   "Dev",
			company: FallbackCompany,
		},
		{
			name:       "mixed skill items",
			body:       `{"profession":7,"skills":["go",1,null,{"x":1}],"matches":[{"matched_skills":["sql",true]}]}`,
			title:      FallbackTitle,
			company:    FallbackCompany,
			skills:     []string{"go", "1"},
			matched:    []string{"sql"},
			profession: "7",
		},
		{
			name:    "match is not an object",
			body:    `{"matches":["oops"]}`,
			title:   FallbackTitle,
			company: FallbackCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Result
			if err := json.Unmarshal([]byte(tt.body), &r); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			r.Normalize()

			if len(r.Matches) != 1 {
				t.Fatalf("Matches len = %d, want 1", len(r.Matches))
			}
			m := r.Matches[0]
			if got := m.DisplayTitle(); got != tt.title {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.title)
			}
			if got := m.DisplayCompany(); got != tt.company {
				t.Errorf("DisplayCompany() = %q, want %q", got, tt.company)
			}
			if len(r.Skills) != len(tt.skills) {
				t.Fatalf("Skills = %#v, want %#v", r.Skills, tt.skills)
			}
			for i := range tt.skills {
				if r.Skills[i] != tt.skills[i] {
					t.Errorf("Skills[%d] = %q, want %q", i, r.Skills[i], tt.skills[i])
				}
			}
			if len(m.MatchedSkills) != len(tt.matched) {
				t.Errorf("MatchedSkills = %#v, want %#v", m.MatchedSkills, tt.matched)
			}
			if r.Profession != tt.profession {
				t.Errorf("Profession = %q, want %q", r.Profession, tt.profession)
			}
		})
	}
}

func TestResultUnmarshalRejectsNonObject(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`["go"]`), &r); err == nil {
		t.Error("Unmarshal() of an array should fail")
	}
}

func TestCandidateSize(t *testing.T) {
	tests := []struct {
		name string
		c    *Candidate
		want int
	}{
		{"nil", nil, 0},
		{"file", NewFileCandidate("cv.pdf", []byte("12345")), 5},
		{"text", NewTextCandidate("héllo"), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}
