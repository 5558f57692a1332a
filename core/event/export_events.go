package event

// TextSaved is published when a tab's text was written to a file.
type TextSaved struct {
	baseTabEvent
	Path string
}

func NewTextSaved(tabID int, path string) *TextSaved {
	return &TextSaved{
		baseTabEvent: baseTabEvent{tabID: tabID},
		Path:         path,
	}
}

func (e *TextSaved) EventName() string {
	return "TextSaved"
}

// AllTabsSaved is published when the combined export was written.
type AllTabsSaved struct {
	Path     string
	Sections int
}

func NewAllTabsSaved(path string, sections int) *AllTabsSaved {
	return &AllTabsSaved{Path: path, Sections: sections}
}

func (e *AllTabsSaved) EventName() string {
	return "AllTabsSaved"
}
