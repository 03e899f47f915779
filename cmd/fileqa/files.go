package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the files command.
func (c *FilesCmd) Run(deps *Dependencies) error {
	files, err := deps.Loader.Load(deps.Ctx, c.Paths)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tSIZE\tHASH")
	for _, f := range files {
		if f.Readable() {
			fmt.Fprintf(w, "%s\tok\t%d\t%s\n", f.Name, len(f.Text), f.ContentHash)
		} else {
			fmt.Fprintf(w, "%s\tunreadable: %s\t\t\n", f.Name, f.LoadError)
		}
	}
	return w.Flush()
}
