package cli

import (
	"fmt"
	"io"

	"todomatic/internal/model"
	"todomatic/internal/todo"

	"github.com/spf13/cobra"
)

type listOutput struct {
	Filter  todo.Filter  `json:"filter"`
	Heading string       `json:"heading"`
	Count   int          `json:"count"`
	Tasks   []model.Task `json:"tasks"`
}

func (o listOutput) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, o.Heading); err != nil {
		return err
	}
	for _, t := range o.Tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		if _, err := fmt.Fprintf(w, "[%s] %s  (%s)\n", mark, t.Name, t.ID); err != nil {
			return err
		}
	}
	return nil
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the visible tasks and heading for a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app)
			if err != nil {
				return err
			}
			defer s.closer.Close()

			p := todo.Project(s.store, s.filter)
			return writeOut(cmd, app, listOutput{
				Filter:  p.Filter,
				Heading: p.Heading(),
				Count:   p.Count,
				Tasks:   p.Tasks,
			})
		},
	}
}
