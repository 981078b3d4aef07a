package main

import (
	"errors"
	"io"

	"github.com/robbyt/go-fundamentos"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run <lesson>... | --all",
		Short: "Run lessons and print exactly what they print",
		Example: `  fundamentos run loop
  fundamentos run 1 2 --engine risor
  fundamentos run --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("name one or more lessons, or pass --all")
			}

			engine, err := a.cfg.EngineOrDefault()
			if err != nil {
				return err
			}
			runner, err := a.runner(engine)
			if err != nil {
				return err
			}

			// each transcript is written as soon as its lesson finishes
			out := cmd.OutOrStdout()
			write := func(res *fundamentos.Result) error {
				return writeTranscript(out, res)
			}

			if all {
				return runner.RunEach(cmd.Context(), write)
			}
			for _, ref := range args {
				res, err := runner.Run(cmd.Context(), ref)
				if err != nil {
					return err
				}
				if err := write(res); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every lesson in order")
	return cmd
}

func writeTranscript(w io.Writer, res *fundamentos.Result) error {
	_, err := res.Transcript.WriteTo(w)
	return err
}
