package command

// SaveText writes a tab's text to a file.
type SaveText struct {
	baseTabCommand
	Path string
}

func NewSaveText(tabID int, path string) *SaveText {
	return &SaveText{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Path:           path,
	}
}

func (c *SaveText) CommandName() string {
	return "SaveText"
}

// SaveAll writes the text of every tab into one combined file.
type SaveAll struct {
	Path string
}

func (c *SaveAll) CommandName() string {
	return "SaveAll"
}
