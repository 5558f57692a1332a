package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"ocrdesk/infrastructure/export"
	"ocrdesk/infrastructure/imageio"
	"ocrdesk/infrastructure/logging"
)

func newImageCmd(d *deps) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "image <file>...",
		Short: "Extract text from image files",
		Long: `Extract text from one or more image files.

With a single file the text is printed as is. With several files each
text is preceded by a "--- name ---" header, the same layout the desktop
app uses for "Save All Tabs". Files without text are left out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("no input files provided")
			}

			s, err := d.newScanner(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			sections := make([]export.Section, 0, len(args))
			for _, path := range args {
				ctx := logging.With(cmd.Context(), d.logger.With("file", path))

				img, err := imageio.Load(path)
				if err != nil {
					return err
				}
				text, err := s.scan(ctx, img)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				sections = append(sections, export.Section{Label: filepath.Base(path), Text: text})
			}

			return writeSections(cmd, flags.out, sections)
		},
	}

	addScanFlags(cmd, flags)
	return cmd
}

// writeSections prints or saves the results. A single section is written
// without a header.
func writeSections(cmd *cobra.Command, out string, sections []export.Section) error {
	if len(sections) == 1 {
		text := sections[0].Text
		if out != "" {
			return export.WriteText(out, text)
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}

	if out != "" {
		return export.WriteAll(out, sections)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), export.FormatSections(sections))
	return err
}
