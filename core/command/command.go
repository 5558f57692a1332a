// Package command defines all commands that can be sent to the application.
// Commands represent user intentions and are processed by the application layer.
package command

// Command is the base interface for all commands.
// Commands are sent from the presentation layer to the application layer.
type Command interface {
	// CommandName returns the name of the command for logging/debugging
	CommandName() string
}

// TabCommand is a command that targets a specific tab.
type TabCommand interface {
	Command
	// TabID returns the target tab ID
	TabID() int
}

// baseTabCommand provides common implementation for tab commands.
type baseTabCommand struct {
	tabID int
}

func (c *baseTabCommand) TabID() int {
	return c.tabID
}
