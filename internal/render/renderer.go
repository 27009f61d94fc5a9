package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws Views as terminal text.
type Renderer struct {
	theme Theme
	width int
}

// NewRenderer creates a renderer. A width of zero lets panels size to content.
func NewRenderer(theme Theme, width int) *Renderer {
	return &Renderer{theme: theme, width: width}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// SetWidth changes the panel width, e.g. after a terminal resize.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Render draws the full page: header, action, status, skills, and matches.
func (r *Renderer) Render(v View) string {
	var b strings.Builder

	b.WriteString(r.theme.titleStyle().Render("ThinkHire"))
	b.WriteString("  ")
	b.WriteString(r.theme.hintStyle().Render("résumé skill analysis"))
	b.WriteString("\n\n")

	b.WriteString(r.Action(v))
	b.WriteString("\n")

	if status := r.Status(v); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(r.Skills(v))
	b.WriteString("\n")
	b.WriteString(r.Matches(v))
	b.WriteString("\n")

	return b.String()
}

// Action draws the submit control with the current candidate.
func (r *Renderer) Action(v View) string {
	button := r.theme.actionStyle(v.ActionEnabled).Render(v.ActionLabel)
	if v.Candidate == "" {
		return button
	}
	return button + "  " + r.theme.hintStyle().Render(v.Candidate)
}

// Status draws the in-flight indicator or the error banner. Empty when neither applies.
func (r *Renderer) Status(v View) string {
	switch {
	case v.Busy:
		return r.theme.statusStyle().Render("⏳ Analyzing résumé...")
	case v.Error != "":
		return r.theme.errorStyle().Render("✗ " + v.Error)
	default:
		return ""
	}
}

// Skills draws the skill tag panel.
func (r *Renderer) Skills(v View) string {
	var body string
	if len(v.Skills) == 0 {
		body = r.theme.hintStyle().Render(v.SkillsPlaceholder)
	} else {
		tags := make([]string, 0, len(v.Skills))
		for _, s := range v.Skills {
			tags = append(tags, r.theme.tagStyle().Render(s))
		}
		body = r.wrapTags(tags)
	}

	header := r.theme.successStyle().Render("Skills")
	if v.Profession != "" {
		header += "  " + r.theme.statusStyle().Render(v.Profession)
	}
	return r.theme.panelStyle(r.width).Render(header + "\n" + body)
}

// Matches draws the ranked job list.
func (r *Renderer) Matches(v View) string {
	header := r.theme.successStyle().Render("Matched jobs")
	if len(v.Matches) == 0 {
		return r.theme.panelStyle(r.width).Render(header + "\n" + r.theme.hintStyle().Render(v.MatchesPlaceholder))
	}

	lines := []string{header}
	for i, m := range v.Matches {
		lines = append(lines, fmt.Sprintf("%d. %s · %s", i+1, lipgloss.NewStyle().Bold(true).Render(m.Title), m.Company))
		lines = append(lines, "   Matched: "+m.Matched)
		if m.CanApply {
			lines = append(lines, "   Apply: "+r.theme.linkStyle().Render(m.ApplyURL))
		} else {
			lines = append(lines, "   "+r.theme.disabledStyle().Render("Apply (no link)"))
		}
	}
	return r.theme.panelStyle(r.width).Render(strings.Join(lines, "\n"))
}

// wrapTags lays tags out in rows no wider than the panel.
func (r *Renderer) wrapTags(tags []string) string {
	limit := r.width - 4
	if limit <= 0 {
		return strings.Join(tags, " ")
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, tag := range tags {
		w := lipgloss.Width(tag)
		if len(row) > 0 && rowWidth+1+w > limit {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, tag)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}
