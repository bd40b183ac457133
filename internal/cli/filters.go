package cli

import (
	"fmt"
	"io"
	"strings"

	"todomatic/internal/todo"

	"github.com/spf13/cobra"
)

type filtersOutput struct {
	Filters []string `json:"filters"`
}

func (o filtersOutput) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(o.Filters, "\n"))
	return err
}

func newFiltersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List filter names in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, filtersOutput{Filters: todo.FilterNames()})
		},
	}
}
