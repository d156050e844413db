package commands

import (
	"github.com/timsite/tim/internal/scaffold"
)

// NewCmd implements the 'new' command.
type NewCmd struct {
	Site string `arg:"" help:"Name of the site folder to create"`
}

func (n *NewCmd) Run(_ *Global, root *CLI) error {
	s, err := root.site(n.Site)
	if err == nil {
		err = scaffold.New(s, root.Settings().ExampleDir)
	}
	return report(err, n.Site+" has been created properly", n.Site+" has NOT been created properly")
}
