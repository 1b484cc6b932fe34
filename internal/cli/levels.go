package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/simplylog/core"
)

func newLevelsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels with their rank and console colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			r, err := root.registry(cmd)
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, r.Close()) }()

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("RANK", "LEVEL", "COLOR")
			for _, l := range core.Levels() {
				color, _ := r.Color(l.String())
				t.Row(strconv.Itoa(int(l)), l.String(), color)
			}
			t.Row(strconv.Itoa(int(core.OffLevel)), core.OffLevel.String(), "-")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
