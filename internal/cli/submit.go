package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Urvashi-146/ThinkHire/internal/intake"
	"github.com/Urvashi-146/ThinkHire/internal/metrics"
	"github.com/Urvashi-146/ThinkHire/internal/models"
	"github.com/Urvashi-146/ThinkHire/internal/pdftext"
	"github.com/Urvashi-146/ThinkHire/internal/render"
	"github.com/Urvashi-146/ThinkHire/internal/submission"
)

var (
	submitFile   string
	submitText   string
	submitOutput string
	submitStats  bool
)

// stdinMarker selects standard input as the text source.
const stdinMarker = "-"

var errConflictingInputs = errors.New("choose one input: a file argument, --file, or --text")

var submitCmd = &cobra.Command{
	Use:   "submit [file]",
	Short: "Upload a résumé and show skills and matched jobs",
	Long: `Upload a résumé to the analysis service and print the extracted skills
and the matched job postings.

The résumé can be given as a file path (PDF or TXT), with --file, or as
pasted text with --text. Use "-" to read text from standard input; piped
input is read automatically when no other source is given.

Examples:
  thinkhire submit resume.pdf
  thinkhire submit --file ~/cv/resume.txt --output json
  thinkhire submit --text "Go developer with Kubernetes and PostgreSQL"
  cat resume.txt | thinkhire submit -
  thinkhire submit resume.pdf --stats --output yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "résumé file to upload (.pdf or .txt)")
	submitCmd.Flags().StringVarP(&submitText, "text", "t", "", `résumé text to upload ("-" reads stdin)`)
	submitCmd.Flags().StringVarP(&submitOutput, "output", "o", formatText, "output format (text, json, yaml)")
	submitCmd.Flags().BoolVar(&submitStats, "stats", false, "print request timing stats")
}

// inputSources are the ways a submit invocation can name its résumé.
type inputSources struct {
	dropped    string // positional argument
	browsed    string // --file
	text       string // --text
	textSet    bool
	stdin      io.Reader
	stdinPiped bool
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if err := validateFormat(submitOutput); err != nil {
		return err
	}

	src := inputSources{
		browsed:    submitFile,
		text:       submitText,
		textSet:    cmd.Flags().Changed("text"),
		stdin:      os.Stdin,
		stdinPiped: !term.IsTerminal(int(os.Stdin.Fd())),
	}
	if len(args) == 1 {
		src.dropped = args[0]
	}

	acq := intake.NewAcquirer(cfg.MaxFileSize)
	if _, err := acquire(acq, src, cfg.MaxFileSize); err != nil {
		if intake.IsValidationError(err) {
			collector.RecordOutcome(metrics.OutcomeRejected)
			logger.Info("input rejected", "error", err)
		}
		return err
	}

	if submitOutput == formatText {
		preflight(cmd.ErrOrStderr(), acq.Current())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl := newController(newClient())
	st := ctrl.Submit(ctx, acq.Take())
	view := render.Project(st)

	out := cmd.OutOrStdout()
	if submitOutput == formatText {
		fmt.Fprint(out, newRenderer().Render(view))
		if submitStats {
			printStats(out, collector.Snapshot())
		}
	} else {
		result := newSubmissionReport(view)
		if submitStats {
			snap := collector.Snapshot()
			result.Metrics = &snap
		}
		if err := writeStructured(out, submitOutput, result); err != nil {
			return err
		}
	}

	if st.Phase != submission.PhaseSucceeded {
		return fmt.Errorf("submission %s: %s", st.Phase, st.Message)
	}
	return nil
}

// acquire selects the candidate named by src. It returns nil without error
// when nothing was given, leaving the rejection to the controller.
func acquire(acq *intake.Acquirer, src inputSources, maxSize int64) (*models.Candidate, error) {
	given := 0
	for _, set := range []bool{src.dropped != "", src.browsed != "", src.textSet} {
		if set {
			given++
		}
	}
	if given > 1 {
		return nil, errConflictingInputs
	}

	switch {
	case src.dropped == stdinMarker, src.textSet && src.text == stdinMarker:
		return selectStdin(acq, src.stdin, maxSize)
	case src.dropped != "":
		return acq.Drop(src.dropped)
	case src.browsed != "":
		return acq.Browse(src.browsed)
	case src.textSet:
		return acq.SelectText(src.text)
	case src.stdinPiped && src.stdin != nil:
		return selectStdin(acq, src.stdin, maxSize)
	default:
		return nil, nil
	}
}

func selectStdin(acq *intake.Acquirer, r io.Reader, maxSize int64) (*models.Candidate, error) {
	if r == nil {
		return nil, intake.ErrNoInput
	}
	if maxSize <= 0 {
		maxSize = intake.DefaultMaxFileSize
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: stdin exceeds %d bytes", intake.ErrFileTooLarge, maxSize)
	}
	return acq.SelectText(string(data))
}

// preflight warns when a PDF has no extractable text, since the analysis
// service would find no skills in it.
func preflight(w io.Writer, cand *models.Candidate) {
	if cand == nil || cand.Extension != ".pdf" {
		return
	}
	content, err := pdftext.Extract(cand)
	switch {
	case errors.Is(err, pdftext.ErrNoText):
		logger.Warn("pdf has no extractable text", "file", cand.Name)
		fmt.Fprintf(w, "Warning: %s has no extractable text (scanned PDF?); results may be empty.\n", cand.Name)
	case err != nil:
		logger.Debug("pdf preflight failed", "file", cand.Name, "error", err)
	default:
		logger.Debug("pdf preflight", "file", cand.Name, "pages", content.PageCount, "words", content.Words())
	}
}
