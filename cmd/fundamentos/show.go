package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <lesson>",
		Short: "Print a lesson's script, comments included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.cfg.EngineOrDefault()
			if err != nil {
				return err
			}
			runner, err := a.runner(engine)
			if err != nil {
				return err
			}

			l, src, err := runner.Source(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			header := r.NewStyle().Bold(true)
			path := r.NewStyle().Faint(true)

			fmt.Fprintln(out, header.Render(fmt.Sprintf("%d. %s", l.Order, l.Title)))
			fmt.Fprintln(out, path.Render(l.ScriptPath(engine)))
			fmt.Fprintln(out)
			fmt.Fprint(out, src)
			if !strings.HasSuffix(src, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
