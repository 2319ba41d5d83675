package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/vocab"
)

// app holds the persistent flags and shared state of one invocation.
type app struct {
	configPath string
	wordsPath  string
	caseFold   bool
	workers    int
	logLevel   string

	out io.Writer
	log *logrus.Logger
	cfg *vocab.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, log: logrus.New()}
	a.log.SetOutput(stderr)

	rootCmd := &cobra.Command{
		Use:           "wordladder",
		Short:         "Shortest word ladders and components over a vocabulary",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (words, files, case_fold, workers, log_level)")
	pf.StringVar(&a.wordsPath, "words", "", "word-list file, one word per line")
	pf.BoolVar(&a.caseFold, "case-fold", false, "treat words case-insensitively")
	pf.IntVar(&a.workers, "workers", 0, "goroutines used to build edges (0 = config or 1)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	var explain bool
	pathCmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest ladder from FROM to TO, one word per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runPath(args[0], args[1], explain)
		},
	}
	pathCmd.Flags().BoolVar(&explain, "explain", false, "annotate each step with its edit kind")

	var list bool
	componentsCmd := &cobra.Command{
		Use:   "components",
		Short: "Print the number of connected components",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runComponents(list)
		},
	}
	componentsCmd.Flags().BoolVar(&list, "list", false, "also print the words of each component")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every word and its neighbors, sorted",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runDump()
		},
	}

	rootCmd.AddCommand(pathCmd, componentsCmd, dumpCmd)

	return rootCmd
}

// configure loads the config file and lets explicitly set flags override it.
func (a *app) configure(cmd *cobra.Command) error {
	cfg := &vocab.Config{}
	if a.configPath != "" {
		var err error
		if cfg, err = vocab.LoadConfig(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("case-fold") {
		cfg.CaseFold = a.caseFold
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.LogLevel != "" {
		lvl, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.log.SetLevel(lvl)
	}
	a.cfg = cfg

	return nil
}

// vocabulary gathers words from the config, then the --words file, falling
// back to the built-in sample.
func (a *app) vocabulary() ([]string, error) {
	var words []string
	if len(a.cfg.Words) > 0 || len(a.cfg.Files) > 0 {
		var err error
		if words, err = a.cfg.Vocabulary(); err != nil {
			return nil, err
		}
	}
	if a.wordsPath != "" {
		more, err := vocab.LoadFile(a.wordsPath)
		if err != nil {
			return nil, err
		}
		words = append(words, more...)
	}
	if len(words) == 0 {
		a.log.Debug("no vocabulary configured, using built-in sample")
		words = vocab.Default()
	}

	return words, nil
}

func (a *app) graph() (*wordladder.WordGraph, error) {
	words, err := a.vocabulary()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := wordladder.New(words, a.cfg.GraphOptions()...)
	stats := g.Graph().Stats()
	a.log.WithFields(logrus.Fields{
		"words":     stats.Words,
		"edges":     stats.Edges,
		"isolated":  stats.Isolated,
		"case_fold": stats.CaseFold,
		"elapsed":   time.Since(start),
	}).Debug("graph built")

	return g, nil
}

func (a *app) runPath(from, to string, explain bool) error {
	g, err := a.graph()
	if err != nil {
		return err
	}

	path := g.ShortestPath(from, to)
	if len(path) == 0 {
		a.log.WithFields(logrus.Fields{"from": from, "to": to}).Warn("no path")
		return nil
	}
	for i, w := range path {
		if !explain || i == 0 {
			fmt.Fprintln(a.out, w)
			continue
		}
		fmt.Fprintf(a.out, "%s\t(%s)\n", w, ladder.Kind(path[i-1], w))
	}

	return nil
}

func (a *app) runComponents(list bool) error {
	g, err := a.graph()
	if err != nil {
		return err
	}

	if !list {
		fmt.Fprintln(a.out, g.NumberOfComponents())
		return nil
	}
	comps := g.Components()
	fmt.Fprintln(a.out, len(comps))
	for i, c := range comps {
		fmt.Fprintf(a.out, "%d: %v\n", i, c)
	}

	return nil
}

func (a *app) runDump() error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, g.String())

	return nil
}
