package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Urvashi-146/ThinkHire/internal/metrics"
	"github.com/Urvashi-146/ThinkHire/internal/models"
	"github.com/Urvashi-146/ThinkHire/internal/render"
)

var (
	fetchSkills []string
	fetchOutput string
)

var fetchJobsCmd = &cobra.Command{
	Use:   "fetch-jobs",
	Short: "Find job postings matching a list of skills",
	Long: `Ask the analysis service for job postings matching the given skills,
without uploading a résumé.

Examples:
  thinkhire fetch-jobs --skills go,kubernetes,postgresql
  thinkhire fetch-jobs -s python -s "machine learning" --output json`,
	Args: cobra.NoArgs,
	RunE: runFetchJobs,
}

func init() {
	fetchJobsCmd.Flags().StringSliceVarP(&fetchSkills, "skills", "s", nil, "skills to match (comma-separated)")
	fetchJobsCmd.Flags().StringVarP(&fetchOutput, "output", "o", formatText, "output format (text, json, yaml)")
	_ = fetchJobsCmd.MarkFlagRequired("skills")
}

func runFetchJobs(cmd *cobra.Command, args []string) error {
	if err := validateFormat(fetchOutput); err != nil {
		return err
	}

	skills := cleanSkills(fetchSkills)
	if len(skills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := newClient()

	var matches []models.JobMatch
	err := collector.Time(metrics.OpFetchJobs, func() error {
		var err error
		matches, err = c.FetchJobs(ctx, skills)
		return err
	})
	if err != nil {
		logger.Warn("fetch jobs failed", "error", err)
		return fmt.Errorf("fetch jobs: %w", err)
	}

	views := render.ProjectMatches(matches)
	out := cmd.OutOrStdout()
	if fetchOutput != formatText {
		return writeStructured(out, fetchOutput, map[string]any{
			"skills":  skills,
			"matches": matchReports(views),
		})
	}

	v := render.View{Matches: views}
	if len(views) == 0 {
		v.MatchesPlaceholder = render.MatchesPlaceholder
	}
	fmt.Fprintln(out, newRenderer().Matches(v))
	return nil
}

// cleanSkills trims entries and drops blanks and case-insensitive duplicates,
// keeping first-seen order.
func cleanSkills(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
