package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Urvashi-146/ThinkHire/internal/metrics"
	"github.com/Urvashi-146/ThinkHire/internal/render"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatYAML}

const maxRenderWidth = 100

func validateFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("invalid output format %q (valid: text, json, yaml)", format)
	}
	return nil
}

// submissionReport is the machine-readable form of a finished submission.
type submissionReport struct {
	Status     string            `json:"status" yaml:"status"`
	Candidate  string            `json:"candidate" yaml:"candidate"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	Profession string            `json:"profession,omitempty" yaml:"profession,omitempty"`
	Skills     []string          `json:"skills" yaml:"skills"`
	Matches    []matchReport     `json:"matches" yaml:"matches"`
	Metrics    *metrics.Snapshot `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

type matchReport struct {
	Title         string `json:"title" yaml:"title"`
	Company       string `json:"company" yaml:"company"`
	MatchedSkills string `json:"matched_skills" yaml:"matched_skills"`
	ApplyURL      string `json:"apply_url,omitempty" yaml:"apply_url,omitempty"`
}

// newSubmissionReport builds the output from a projected view, so the same
// fallbacks apply as on screen.
func newSubmissionReport(v render.View) submissionReport {
	return submissionReport{
		Status:     v.Phase.String(),
		Candidate:  v.Candidate,
		Error:      v.Error,
		Profession: v.Profession,
		Skills:     v.Skills,
		Matches:    matchReports(v.Matches),
	}
}

func matchReports(views []render.MatchView) []matchReport {
	out := make([]matchReport, 0, len(views))
	for _, m := range views {
		out = append(out, matchReport{
			Title:         m.Title,
			Company:       m.Company,
			MatchedSkills: m.Matched,
			ApplyURL:      m.ApplyURL,
		})
	}
	return out
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
}

// newRenderer creates a renderer for the configured theme sized to stdout.
func newRenderer() *render.Renderer {
	theme, err := render.ThemeByName(cfg.Theme)
	if err != nil {
		theme = render.ClassicTheme
	}
	return render.NewRenderer(theme, terminalWidth(os.Stdout))
}

// terminalWidth returns the usable panel width for f, or 0 if f is not a terminal.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}
	return min(w-2, maxRenderWidth)
}

// printStats writes a metrics snapshot as a table.
func printStats(w io.Writer, snap metrics.Snapshot) {
	fmt.Fprintf(w, "\nStats (uptime %.1fs):\n", snap.UptimeSeconds)
	for _, op := range snap.Operations {
		fmt.Fprintf(w, "  %-12s count=%d avg=%.1fms min=%dms max=%dms\n",
			op.Name, op.Count, op.AvgTimeMs, op.MinTimeMs, op.MaxTimeMs)
	}
	outcomes := make([]string, 0, len(snap.Outcomes))
	for name := range snap.Outcomes {
		outcomes = append(outcomes, name)
	}
	slices.Sort(outcomes)
	for _, name := range outcomes {
		fmt.Fprintf(w, "  %-12s %d\n", name, snap.Outcomes[name])
	}
}
