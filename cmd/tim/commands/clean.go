package commands

import "github.com/timsite/tim/internal/scaffold"

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	Site string `arg:"" help:"Name of the site to clean"`
}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	s, err := root.site(c.Site)
	if err == nil {
		err = scaffold.Clean(s)
	}
	return report(err, "Cleaning "+c.Site+" was completed", "Cleaning "+c.Site+" was NOT completed")
}
