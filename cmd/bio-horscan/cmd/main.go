// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/horscan/align"
	"github.com/grailbio/horscan/alignment"
	"github.com/grailbio/horscan/horscan"
	"github.com/grailbio/horscan/optimize"
	"github.com/pkg/profile"
	"v.io/x/lib/cmdline"
)

// parseMode parses a comma-separated list of integers, e.g. "4,5,2".
func parseMode(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var mode []int
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("-mode: %q is not an integer", field)
		}
		mode = append(mode, v)
	}
	return mode, nil
}

// scoring converts the -mode flag value to a Scoring.
func scoring(s string) (align.Scoring, error) {
	mode, err := parseMode(s)
	if err != nil {
		return align.Scoring{}, err
	}
	sc, complete := align.ScoringFromMode(mode)
	if !complete {
		log.Printf("run with default params")
	}
	return sc, nil
}

func newCmdAlign() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "align",
		Short: "Align two monomer lists and write <output>.alignment",
	}
	opts := horscan.DefaultOpts
	cmd.Flags.StringVar(&opts.SourcePath, "source", "", "Source monomer BED path")
	cmd.Flags.StringVar(&opts.TargetPath, "target", "", "Target monomer BED path")
	cmd.Flags.StringVar(&opts.OutputPrefix, "output", horscan.DefaultOpts.OutputPrefix, "Output alignment path prefix")
	cmd.Flags.BoolVar(&opts.SkipOptimize, "no-optimize", false, "Write the raw DP alignment without the gap-repair pass")
	modeFlag := cmd.Flags.String("mode", "", `Comma-separated scores "match,mismatch,gap".
Mismatch and gap are given as magnitudes and subtracted.  With fewer than
three values the defaults 4,5,2 are used.`)
	cpuProfile := cmd.Flags.String("cpuprofile", "", "If set, write a CPU profile into this directory")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("align takes no positional arguments, but got %v", argv)
		}
		if opts.SourcePath == "" || opts.TargetPath == "" {
			return fmt.Errorf("align: both -source and -target are required")
		}
		sc, err := scoring(*modeFlag)
		if err != nil {
			return err
		}
		opts.Scoring = sc
		if *cpuProfile != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
		}
		summary, err := horscan.Run(vcontext.Background(), opts)
		if err != nil {
			return err
		}
		return printCounts(env.Stdout, summary.Optimized)
	})
	return cmd
}

func newCmdOptimize() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "optimize",
		Short:    "Rerun the gap-repair pass over an existing alignment file",
		ArgsName: "path",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("optimize takes one pathname argument, but got %v", argv)
		}
		_, after, err := optimize.File(vcontext.Background(), argv[0])
		if err != nil {
			return err
		}
		return printCounts(env.Stdout, after)
	})
	return cmd
}

func newCmdStats() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "stats",
		Short:    "Count the rows of an alignment file per tag",
		ArgsName: "path",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("stats takes one pathname argument, but got %v", argv)
		}
		recs, err := alignment.ReadPath(vcontext.Background(), argv[0])
		if err != nil {
			return err
		}
		return printCounts(env.Stdout, alignment.Count(recs))
	})
	return cmd
}

// printCounts writes one "tag<TAB>count" line per tag.
func printCounts(w io.Writer, c alignment.TypeCount) error {
	_, err := fmt.Fprintf(w, "MTH\t%d\nMIS\t%d\nINS\t%d\nDEL\t%d\n", c.MTH, c.MIS, c.INS, c.DEL)
	return err
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-horscan",
		Short:    "Align and repair monomer lists of two samples",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdAlign(),
			newCmdOptimize(),
			newCmdStats(),
		},
	}
}

// Run is the entry point of bio-horscan.  Global logging flags such as
// -v=1 (debug output) go before the subcommand name.
func Run() {
	shutdown := grail.Init()
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile(`^v$`), regexp.MustCompile(`^alsologtostderr$`))
	env := cmdline.EnvFromOS()
	code := cmdline.ExitCode(cmdline.ParseAndRun(newCmdRoot(), env, os.Args[1:]), env.Stderr)
	shutdown()
	os.Exit(code)
}
