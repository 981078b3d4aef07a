package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lessons in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := a.cfg.EngineOrDefault()
			if err != nil {
				return err
			}
			runner, err := a.runner(engine)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			header := r.NewStyle().Bold(true)
			name := r.NewStyle().Width(12)

			fmt.Fprintln(out, header.Render(fmt.Sprintf("%-3s %-12s %s", "#", "LESSON", "TITLE")))
			for _, l := range runner.Catalog().List() {
				fmt.Fprintf(out, "%-3d %s %s\n", l.Order, name.Render(l.Name), l.Title)
			}
			return nil
		},
	}
}
