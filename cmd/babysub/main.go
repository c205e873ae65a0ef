// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"babysub/internal/console"
	"babysub/internal/dimacs"
	"babysub/internal/stream"
	"babysub/internal/subsume"
)

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "babysub [input] [output]",
		Short:         "Simplifies DIMACS CNF formulae by clause subsumption",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress comment-level output")
	flags.BoolVarP(&opts.sign, "sign", "s", false, "add a hash signature to the output")
	flags.BoolVarP(&opts.forward, "forward", "f", false, "enable forward subsumption")
	flags.BoolVarP(&opts.backward, "backward", "b", false, "enable backward subsumption")

	if err := cmd.Execute(); err != nil {
		var pe *dimacs.ParseError
		if errors.As(err, &pe) {
			console.ReportParseError(os.Stderr, pe.Path, pe.Line, pe.Column, pe.LineText, pe.Msg)
		} else {
			console.ReportFatal(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type options struct {
	verbosity int
	quiet     bool
	sign      bool
	forward   bool
	backward  bool
}

func run(opts options, args []string) error {
	if opts.forward && opts.backward {
		return errors.New("cannot enable both forward and backward subsumption")
	}
	verbosity := opts.verbosity
	if opts.quiet {
		verbosity = -1
	}
	commonlog.Configure(verbosity, nil)

	inputPath := stream.Stdin
	outputPath := stream.Stdout
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	mode := subsume.Backward
	if opts.forward {
		mode = subsume.Forward
	}

	in, err := stream.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := stream.Create(outputPath)
	if err != nil {
		return err
	}

	cfg := config{
		inputPath:  inputPath,
		outputPath: outputPath,
		verbosity:  verbosity,
		sign:       opts.sign,
		mode:       mode,
	}
	if err := process(cfg, in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
