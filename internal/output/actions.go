package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// BrowserDownloadURL is the name of the tool's single output value.
const BrowserDownloadURL = "browser_download_url"

// WriteOutput publishes name=value as a step output. Inside the Actions
// runner that means appending to the file named by $GITHUB_OUTPUT; outside
// it, the pair is printed to w so terminal runs still see the result.
func WriteOutput(w io.Writer, name, value string) error {
	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening GITHUB_OUTPUT file: %w", err)
		}
		defer f.Close()
		if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
			return fmt.Errorf("writing GITHUB_OUTPUT file: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s=%s\n", name, value)
	return err
}

var successLine = color.New(color.FgGreen)

// Successf prints a green human-facing line. Color degrades to plain text
// when w is not a terminal.
func Successf(w io.Writer, format string, args ...any) {
	_, _ = successLine.Fprintf(w, format, args...)
}

var errorLine = color.New(color.FgRed)

// Errorf prints a red human-facing error line.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = errorLine.Fprintf(w, format, args...)
}
