package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Urvashi-146/ThinkHire/internal/intake"
	"github.com/Urvashi-146/ThinkHire/internal/pdftext"
)

var (
	inspectFull   bool
	inspectOutput string
)

const previewRunes = 400

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Preview the text a résumé file contains",
	Long: `Extract the text of a PDF or TXT résumé locally, without uploading it.
Useful to spot scanned PDFs that contain no selectable text.

Examples:
  thinkhire inspect resume.pdf
  thinkhire inspect resume.pdf --full
  thinkhire inspect resume.txt --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectFull, "full", false, "print the full text instead of a preview")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", formatText, "output format (text, json, yaml)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	if err := validateFormat(inspectOutput); err != nil {
		return err
	}

	acq := intake.NewAcquirer(cfg.MaxFileSize)
	cand, err := acq.Browse(args[0])
	if err != nil {
		return err
	}

	content, err := pdftext.Extract(cand)
	if err != nil {
		return fmt.Errorf("extract text from %s: %w", cand.Name, err)
	}

	out := cmd.OutOrStdout()
	if inspectOutput != formatText {
		return writeStructured(out, inspectOutput, content)
	}

	fmt.Fprintf(out, "File:  %s\n", content.Source)
	fmt.Fprintf(out, "Pages: %d\n", content.PageCount)
	fmt.Fprintf(out, "Words: %d\n\n", content.Words())
	if inspectFull {
		fmt.Fprintln(out, content.Text)
	} else {
		fmt.Fprintln(out, pdftext.Preview(content.Text, previewRunes))
	}
	return nil
}
