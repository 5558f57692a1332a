// Package export writes extracted text to plain UTF-8 files.
package export

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"ocrdesk/core/apperror"
	"ocrdesk/core/state"
)

// ErrNothingToSave is returned when there is no non-blank text to write.
var ErrNothingToSave = errors.New("no text to save")

// Section is one tab's contribution to a combined export.
type Section struct {
	Label string
	Text  string
}

// DefaultTextFileName suggests a file name for a single tab's text.
func DefaultTextFileName(now time.Time) string {
	return fmt.Sprintf("ocr_text_%d.txt", now.Unix())
}

// DefaultAllTabsFileName suggests a file name for a combined export.
func DefaultAllTabsFileName(now time.Time) string {
	return "ocr_all_tabs_" + now.Format("20060102-150405") + ".txt"
}

// WriteText writes text to path. Blank text is rejected before the file is
// touched.
func WriteText(path, text string) error {
	if !state.HasText(text) {
		return apperror.Save("save text", ErrNothingToSave)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return apperror.Save("save text", err)
	}
	return nil
}

// FormatSections renders sections with non-blank text, in order, as
// "--- label ---" blocks.
func FormatSections(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		if !state.HasText(s.Text) {
			continue
		}
		fmt.Fprintf(&b, "--- %s ---\n\n%s\n\n", s.Label, s.Text)
	}
	return b.String()
}

// Included returns the labels of sections that FormatSections writes.
func Included(sections []Section) []string {
	var labels []string
	for _, s := range sections {
		if state.HasText(s.Text) {
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// WriteAll writes the combined export of sections to path.
func WriteAll(path string, sections []Section) error {
	content := FormatSections(sections)
	if content == "" {
		return apperror.Save("save all tabs", ErrNothingToSave)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperror.Save("save all tabs", err)
	}
	return nil
}
