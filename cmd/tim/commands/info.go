package commands

import (
	"io"
	"os"

	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/info"
)

// InfoCmd implements the 'info' command.
type InfoCmd struct {
	Site string `arg:"" help:"Name of the site to describe"`
	YAML bool   `name:"yaml" help:"Print the report as YAML"`

	out io.Writer
}

func (i *InfoCmd) Run(_ *Global, root *CLI) error {
	w := i.out
	if w == nil {
		w = os.Stdout
	}
	s, err := root.site(i.Site)
	if err == nil {
		var r *info.Report
		if r, err = info.Gather(s); err == nil {
			if i.YAML {
				err = info.WriteYAML(w, r)
			} else {
				err = info.WriteText(w, r)
			}
		}
	}
	if err != nil {
		console.Failure("All information about '%s' was NOT given", i.Site)
	}
	return err
}
