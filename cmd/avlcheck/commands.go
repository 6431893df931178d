package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/e11jah/avl"
	"github.com/e11jah/avl/internal/harness"
)

// shared state filled in by the root command before any sub-command runs
type globals struct {
	configFile string
	verbose    bool
	config     *harness.Config
	log        *logger.L
}

// the logger can only be initialised once per process
var loggingStarted = false

func newRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           "avlcheck",
		Short:         "Exercise the AVL tree and verify its invariants",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup()
		},
	}
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "configuration file (default $HOME/.avlcheck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "log every operation")

	rootCmd.AddCommand(
		newFuzzCommand(g),
		newReplayCommand(g),
		newLoadCommand(g),
		newPrintCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print avlcheck version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return rootCmd
}

// read configuration and start logging
func (g *globals) setup() error {
	config, err := harness.LoadConfig(g.configFile)
	if err != nil {
		return err
	}
	if g.verbose {
		if nil == config.Logging.Levels {
			config.Logging.Levels = make(map[string]string)
		}
		config.Logging.Levels[logger.DefaultTag] = "trace"
	}
	g.config = config

	if !loggingStarted {
		if err := harness.InitialiseLogging(config.Logging); err != nil {
			return fmt.Errorf("logger setup failed: %w", err)
		}
		loggingStarted = true
	}
	g.log = logger.New("avlcheck")
	g.log.Debugf("config: %+v", config)
	return nil
}

func newFuzzCommand(g *globals) *cobra.Command {
	var (
		seed        uint64
		ops         int
		keySpace    int
		removeRatio float64
		rounds      int
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Run seeded random operation sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.config.Fuzz
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("ops") {
				cfg.Ops = ops
			}
			if flags.Changed("keys") {
				cfg.KeySpace = keySpace
			}
			if flags.Changed("remove-ratio") {
				cfg.RemoveRatio = removeRatio
			}
			if flags.Changed("rounds") {
				cfg.Rounds = rounds
			}

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = harness.NewProgress(cfg.Rounds, "fuzzing")
			}
			reports, err := harness.Fuzz(cfg, g.log, bar)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			for _, r := range reports {
				fmt.Fprintln(out, infoStyle.Render(summary(r)))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %d rounds of %d operations\n", passStyle.Render("PASS"), len(reports), cfg.Ops)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&seed, "seed", 0, "seed of the first round")
	flags.IntVar(&ops, "ops", 0, "operations per round")
	flags.IntVar(&keySpace, "keys", 0, "number of distinct keys")
	flags.Float64Var(&removeRatio, "remove-ratio", 0, "share of mutations that are removes")
	flags.IntVar(&rounds, "rounds", 0, "number of rounds")
	flags.BoolVar(&quiet, "quiet", false, "do not show progress")
	return cmd
}

func newReplayCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE...",
		Short: "Run YAML operation scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				script, err := harness.LoadScript(path)
				if err == nil {
					var report harness.Report
					report, err = harness.NewRunner(script.Name, g.log).RunScript(script)
					if err == nil {
						fmt.Fprintf(out, "%s %s\n", passStyle.Render("PASS"), summary(report))
						continue
					}
				}
				failed += 1
				g.log.Errorf("%s: %s", path, err)
				fmt.Fprintf(out, "%s %s\n", failStyle.Render("FAIL"), err)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scripts failed", failed, len(args))
			}
			return nil
		},
	}
}

func newLoadCommand(g *globals) *cobra.Command {
	var (
		keySet   string
		file     string
		fraction float64
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Insert a large key set, remove part of it and verify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprintln(out, strings.Join(harness.KeySetNames(), "\n"))
				return nil
			}

			var (
				keys []string
				name string
				err  error
			)
			switch {
			case file != "":
				name = file
				keys, err = harness.ReadKeyFile(file)
			case keySet != "":
				name = keySet
				keys, err = harness.LoadKeySet(keySet)
			default:
				return fmt.Errorf("%w: one of --keyset or --file is required", harness.ErrInvalidParameter)
			}
			if err != nil {
				return err
			}

			report, err := harness.Load(name, keys, fraction, g.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s  bound: %d\n", passStyle.Render("PASS"), summary(report), harness.MaxHeight(report.Size))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&keySet, "keyset", "", "bundled key set name")
	flags.StringVar(&file, "file", "", "file with one key per line")
	flags.Float64Var(&fraction, "remove", 0.5, "fraction of keys to remove after inserting")
	flags.BoolVar(&list, "list", false, "list bundled key sets")
	return cmd
}

func newPrintCommand() *cobra.Command {
	var (
		values  bool
		removed []string
	)

	cmd := &cobra.Command{
		Use:   "print KEY...",
		Short: "Insert keys in order and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := avl.New[string, int]()
			for i, k := range args {
				if err := tree.Put(k, i); err != nil {
					return err
				}
			}
			for _, k := range removed {
				tree.Remove(k)
			}

			out := cmd.OutOrStdout()
			depth := tree.Print(out, values)
			fmt.Fprintf(out, "size: %d  height: %d  valid: %v\n", tree.Size(), depth, tree.RepOK())
			return nil
		},
	}
	cmd.Flags().BoolVar(&values, "values", false, "show values, balance, height and size")
	cmd.Flags().StringSliceVar(&removed, "remove", nil, "keys to remove after inserting")
	return cmd
}

func summary(r harness.Report) string {
	return fmt.Sprintf("%s: ops: %d  puts: %d  removes: %d  lookups: %d  size: %d  height: %d  max height: %d",
		r.Name, r.Ops, r.Puts, r.Removes, r.Lookups, r.Size, r.Height, r.MaxHeight)
}
