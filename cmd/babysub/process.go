// SPDX-License-Identifier: Apache-2.0
package main

import (
	"io"
	"time"

	"github.com/tliron/commonlog"

	"babysub/internal/console"
	"babysub/internal/dimacs"
	"babysub/internal/subsume"
)

type config struct {
	inputPath  string
	outputPath string
	verbosity  int
	sign       bool
	mode       subsume.Mode
}

// process runs the whole pipeline on already-opened streams: parse,
// simplify, write, report. Progress goes to the comment channel of the
// output stream; summaries of the parse and simplify phases go to the stderr
// log.
func process(cfg config, in io.Reader, out io.Writer) error {
	start := time.Now()
	log := console.New(out, cfg.verbosity)
	phases := commonlog.GetLogger("babysub")

	log.Message("BabySub Subsumption Preprocessor")
	log.Message("reading from '%s'", cfg.inputPath)

	formula, err := dimacs.Parse(in, cfg.inputPath, log)
	if err != nil {
		return err
	}
	phases.Infof("parsed %d clauses from '%s' in %s",
		formula.Parsed, cfg.inputPath, time.Since(start))

	engine := subsume.New(formula, log)
	engine.Simplify(cfg.mode)
	phases.Infof("%s subsumption removed %d of %d clauses",
		cfg.mode, engine.Stats.Subsumed, formula.Added)

	log.Verbose(1, "writing to '%s'", cfg.outputPath)
	if err := dimacs.Write(out, formula, cfg.sign, log); err != nil {
		return err
	}

	engine.Stats.Report(log, formula, time.Since(start))
	return log.Err()
}
