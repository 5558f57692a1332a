package main

import (
	"image"

	"github.com/spf13/cobra"

	"ocrdesk/infrastructure/export"
	"ocrdesk/infrastructure/logging"
)

func newScreenCmd(d *deps) *cobra.Command {
	flags := &scanFlags{}
	var saveDir string

	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Capture the primary display and extract its text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := d.newScanner(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			capturer := d.newCapturer(d.logger)
			ctx := cmd.Context()

			var img image.Image
			if saveDir != "" {
				capturer.SetSaveDir(saveDir)
				var path string
				img, path, err = capturer.CaptureAndSave(ctx)
				if err == nil {
					d.logger.Info("Screenshot saved", "path", path)
				}
			} else {
				img, err = capturer.Capture(ctx)
			}
			if err != nil {
				return err
			}

			text, err := s.scan(logging.With(ctx, d.logger.With("source", "screen")), img)
			if err != nil {
				return err
			}
			return writeSections(cmd, flags.out, []export.Section{{Label: "screen", Text: text}})
		},
	}

	addScanFlags(cmd, flags)
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "also keep the capture as a PNG in this directory")
	return cmd
}
