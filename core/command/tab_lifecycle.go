package command

// CreateTab opens a new tab with default settings and makes it active.
// It is the "+" control; the control itself is never a tab.
type CreateTab struct{}

func (c *CreateTab) CommandName() string {
	return "CreateTab"
}

// CloseTab closes a tab. Closing the last remaining tab is a no-op.
type CloseTab struct {
	baseTabCommand
}

func NewCloseTab(tabID int) *CloseTab {
	return &CloseTab{baseTabCommand{tabID: tabID}}
}

func (c *CloseTab) CommandName() string {
	return "CloseTab"
}

// SelectTab makes a tab active.
type SelectTab struct {
	baseTabCommand
}

func NewSelectTab(tabID int) *SelectTab {
	return &SelectTab{baseTabCommand{tabID: tabID}}
}

func (c *SelectTab) CommandName() string {
	return "SelectTab"
}
