// Package catalog provides the labels and help texts for the tab option
// pickers (segmentation mode, engine mode and font hint).
package catalog

import "strconv"

// Well-known group names.
const (
	GroupSegmentation = "segmentation"
	GroupEngine       = "engine"
	GroupFont         = "font"
)

// Group is one option picker with its help dialog content.
type Group struct {
	Name    string
	Title   string
	Intro   string
	Footer  string
	Default string
	Options []Option
}

// Option is one selectable entry.
type Option struct {
	// Value is what the tab records ("3", "Legacy", ...).
	Value string
	// Label is the text shown in the picker.
	Label string
	// Name is the short heading used in the help dialog.
	Name string
	Help string
}

// IntValue parses Value as an integer mode.
func (o Option) IntValue() (int, error) {
	return strconv.Atoi(o.Value)
}

// Labels returns the picker labels in display order.
func (g *Group) Labels() []string {
	labels := make([]string, len(g.Options))
	for i, o := range g.Options {
		labels[i] = o.Label
	}
	return labels
}

// ByValue finds an option by its value.
func (g *Group) ByValue(value string) (Option, bool) {
	for _, o := range g.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// ByLabel finds an option by its picker label.
func (g *Group) ByLabel(label string) (Option, bool) {
	for _, o := range g.Options {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// LabelForInt returns the picker label of an integer mode, or "" if unknown.
func (g *Group) LabelForInt(mode int) string {
	if o, ok := g.ByValue(strconv.Itoa(mode)); ok {
		return o.Label
	}
	return ""
}

// HelpMarkdown renders the help dialog body.
func (g *Group) HelpMarkdown() string {
	md := "## " + g.Title + "\n\n"
	if g.Intro != "" {
		md += g.Intro + "\n\n"
	}
	for _, o := range g.Options {
		md += "- **" + o.Name + "**: " + o.Help + "\n"
	}
	if g.Footer != "" {
		md += "\n" + g.Footer + "\n"
	}
	return md
}
