package command

import (
	"image"
	"testing"
)

func TestCommand_Names(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{&CreateTab{}, "CreateTab"},
		{NewCloseTab(1), "CloseTab"},
		{NewSelectTab(1), "SelectTab"},
		{NewLoadImage(1, "scan.png"), "LoadImage"},
		{NewCaptureScreen(1), "CaptureScreen"},
		{NewSetImage(1, nil, "test"), "SetImage"},
		{NewRunOCR(1), "RunOCR"},
		{NewSetAdjustment(1, AdjustContrast, 1.2), "SetAdjustment"},
		{NewSetSegmentationMode(1, 6), "SetSegmentationMode"},
		{NewSetEngineMode(1, 1), "SetEngineMode"},
		{NewSetFontHint(1, "Legacy"), "SetFontHint"},
		{NewSetDeskew(1, false), "SetDeskew"},
		{NewEditText(1, "hello"), "EditText"},
		{NewSaveText(1, "out.txt"), "SaveText"},
		{&SaveAll{Path: "all.txt"}, "SaveAll"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.cmd.CommandName(); got != tt.expected {
				t.Errorf("CommandName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTabCommand_TabID(t *testing.T) {
	tests := []struct {
		name     string
		cmd      TabCommand
		expected int
	}{
		{"CloseTab", NewCloseTab(3), 3},
		{"SelectTab", NewSelectTab(4), 4},
		{"LoadImage", NewLoadImage(5, "a.png"), 5},
		{"CaptureScreen", NewCaptureScreen(6), 6},
		{"SetImage", NewSetImage(7, nil, ""), 7},
		{"RunOCR", NewRunOCR(8), 8},
		{"SetAdjustment", NewSetAdjustment(9, AdjustSharpness, 0.5), 9},
		{"SetSegmentationMode", NewSetSegmentationMode(10, 4), 10},
		{"SetEngineMode", NewSetEngineMode(11, 0), 11},
		{"SetFontHint", NewSetFontHint(12, "Custom"), 12},
		{"SetDeskew", NewSetDeskew(13, true), 13},
		{"EditText", NewEditText(14, ""), 14},
		{"SaveText", NewSaveText(15, ""), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.TabID(); got != tt.expected {
				t.Errorf("TabID() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSaveAll_IsNotTabCommand(t *testing.T) {
	var cmd Command = &SaveAll{}
	if _, ok := cmd.(TabCommand); ok {
		t.Error("SaveAll should not be a TabCommand")
	}

	cmd = &CreateTab{}
	if _, ok := cmd.(TabCommand); ok {
		t.Error("CreateTab should not be a TabCommand")
	}
}

func TestNewSetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	cmd := NewSetImage(2, img, "screenshot")

	if cmd.Image != img {
		t.Error("Image not carried by command")
	}
	if cmd.Source != "screenshot" {
		t.Errorf("Source = %v, want screenshot", cmd.Source)
	}
}

func TestAdjustment_String(t *testing.T) {
	tests := []struct {
		kind     Adjustment
		expected string
	}{
		{AdjustContrast, "contrast"},
		{AdjustBrightness, "brightness"},
		{AdjustSharpness, "sharpness"},
		{Adjustment(9), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
