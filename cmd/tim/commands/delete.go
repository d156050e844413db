package commands

import (
	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/scaffold"
)

// DeleteCmd implements the 'delete' command.
type DeleteCmd struct {
	Site string `arg:"" help:"Name of the site folder to delete"`
}

func (d *DeleteCmd) Run(_ *Global, root *CLI) error {
	s, err := root.site(d.Site)
	if err == nil {
		var n int
		if n, err = scaffold.Delete(s); err == nil {
			console.Success("Removed %d files or directories", n)
		}
	}
	return report(err, d.Site+" was deleted successfully", d.Site+" was NOT deleted successfully")
}
