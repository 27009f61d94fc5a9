// Package render projects submission state onto a display model and draws it.
package render

import (
	"strings"

	"github.com/Urvashi-146/ThinkHire/internal/models"
	"github.com/Urvashi-146/ThinkHire/internal/submission"
)

// Display strings.
const (
	ActionLabel        = "Upload Now"
	BusyActionLabel    = "Uploading..."
	SkillsPlaceholder  = "No skills yet"
	MatchesPlaceholder = "No matched jobs yet"
	NoMatchedSkills    = "—"
)

// View is everything needed to draw one frame. It holds no references into
// the submission state.
type View struct {
	Phase submission.Phase

	ActionEnabled bool
	ActionLabel   string

	// Busy is true while a request is in flight; the progress indicator is shown.
	Busy bool

	Candidate string
	Error     string

	Profession string
	Skills     []string
	Matches    []MatchView

	// Placeholders are set when the corresponding list is empty.
	SkillsPlaceholder  string
	MatchesPlaceholder string
}

// MatchView is one job match with all fallbacks applied.
type MatchView struct {
	Title    string
	Company  string
	Matched  string
	ApplyURL string
	CanApply bool
}

// Project maps a submission state to a View. It never mutates s.
func Project(s submission.State) View {
	v := View{
		Phase:         s.Phase,
		ActionEnabled: !s.Busy(),
		ActionLabel:   ActionLabel,
		Busy:          s.Busy(),
		Candidate:     s.Candidate,
		Skills:        []string{},
		Matches:       []MatchView{},
	}
	if v.Busy {
		v.ActionLabel = BusyActionLabel
	}

	switch s.Phase {
	case submission.PhaseFailed, submission.PhaseIdle:
		v.Error = s.Message
	case submission.PhaseSucceeded:
		if s.Result != nil {
			v.Profession = strings.TrimSpace(s.Result.Profession)
			v.Skills = append(v.Skills, s.Result.Skills...)
			v.Matches = ProjectMatches(s.Result.Matches)
		}
	}

	if len(v.Skills) == 0 {
		v.SkillsPlaceholder = SkillsPlaceholder
	}
	if len(v.Matches) == 0 {
		v.MatchesPlaceholder = MatchesPlaceholder
	}
	return v
}

// ProjectMatches applies the display fallbacks to each match, preserving order.
func ProjectMatches(matches []models.JobMatch) []MatchView {
	out := make([]MatchView, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		url, ok := m.ApplyURL()
		out = append(out, MatchView{
			Title:    m.DisplayTitle(),
			Company:  m.DisplayCompany(),
			Matched:  joinMatched(m.MatchedSkills),
			ApplyURL: url,
			CanApply: ok,
		})
	}
	return out
}

func joinMatched(skills []string) string {
	if len(skills) == 0 {
		return NoMatchedSkills
	}
	return strings.Join(skills, ", ")
}
