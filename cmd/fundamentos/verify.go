package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/robbyt/go-fundamentos"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [lesson...]",
		Short: "Check lesson output against the expected transcript",
		Long: `verify runs the named lessons, or all of them, on every engine (or only the
one given by --engine) and compares each transcript with the expected output.
It exits non-zero when any lesson does not match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engines, err := a.cfg.Engines()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			pass := r.NewStyle().Foreground(lipgloss.Color("2")).Render("ok  ")
			fail := r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render("FAIL")

			var failed int
			for _, engine := range engines {
				runner, err := a.runner(engine)
				if err != nil {
					return err
				}

				refs := args
				if len(refs) == 0 {
					for _, l := range runner.Catalog().List() {
						refs = append(refs, l.String())
					}
				}

				for _, ref := range refs {
					res, err := runner.Verify(cmd.Context(), ref)
					switch {
					case errors.Is(err, fundamentos.ErrOutputMismatch):
						failed++
						fmt.Fprintf(out, "%s %-8s %s\n%v\n", fail, engine, res.Lesson, err)
					case err != nil:
						return err
					default:
						fmt.Fprintf(out, "%s %-8s %s\n", pass, engine, res.Lesson)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d lesson run(s) failed verification", fundamentos.ErrOutputMismatch, failed)
			}
			return nil
		},
	}
}
