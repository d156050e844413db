package commands

import "github.com/timsite/tim/internal/console"

// openItems is printed by the todo command.
var openItems = []string{
	"add a way to build only a part of all feed to speed up the process",
}

// TodoCmd implements the 'todo' command.
type TodoCmd struct{}

func (TodoCmd) Run() error {
	console.Line("\nTODO list\n")
	for _, item := range openItems {
		console.Line("- %s", item)
	}
	return nil
}
