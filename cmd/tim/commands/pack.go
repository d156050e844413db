package commands

import (
	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/pack"
)

// PackCmd implements the 'pack' command.
type PackCmd struct {
	Site string `arg:"" help:"Name of the built site to pack"`
}

func (p *PackCmd) Run(_ *Global, root *CLI) error {
	s, err := root.site(p.Site)
	if err == nil {
		err = s.LoadConfig()
	}
	if err == nil {
		var res pack.Result
		if res, err = pack.Site(s); err == nil {
			console.Line("Packed %d files, omitted %d, saved %d bytes", res.Packed, res.Omitted, res.Saved)
		}
	}
	return report(err, p.Site+" was packed successfully", p.Site+" was NOT packed successfully")
}
