package report

import (
	"fmt"
	"io"
	"os"
)

// Writer delivers a rendered report to up to three destinations: the CI
// step summary file, a uniquely named temp file, and stdout. Delivery is
// best effort per destination; a failure in one never blocks the others,
// and the stdout write is unconditional.
type Writer struct {
	Stdout io.Writer
	Stderr io.Writer

	// SummaryPath is the CI step summary file to append to; empty
	// disables that destination.
	SummaryPath string

	// TempDir overrides the temp file directory (used by tests); empty
	// means the system default.
	TempDir string
}

// NewWriter builds a writer wired to the process environment, picking up
// GITHUB_STEP_SUMMARY when set.
func NewWriter() *Writer {
	return &Writer{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		SummaryPath: os.Getenv("GITHUB_STEP_SUMMARY"),
	}
}

// Write delivers the report. Destination failures are logged to stderr as
// warnings and do not abort delivery to the remaining destinations.
func (w *Writer) Write(report string) {
	if w.SummaryPath != "" {
		if err := appendToFile(w.SummaryPath, report); err != nil {
			fmt.Fprintf(w.Stderr, "Warning: Failed to write to GITHUB_STEP_SUMMARY: %v\n", err)
		}
	}

	if path, err := w.writeTempFile(report); err != nil {
		fmt.Fprintf(w.Stderr, "Error writing temp file: %v\n", err)
	} else {
		fmt.Fprintf(w.Stderr, "Fix proposals generated: %s\n", path)
	}

	fmt.Fprintln(w.Stdout, report)
}

func (w *Writer) writeTempFile(report string) (string, error) {
	f, err := os.CreateTemp(w.TempDir, "fix_proposals_*.md")
	if err != nil {
		return "", err
	}

	_, writeErr := f.WriteString(report)
	closeErr := f.Close()
	if writeErr != nil {
		return "", writeErr
	}
	if closeErr != nil {
		return "", closeErr
	}

	return f.Name(), nil
}

func appendToFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}
