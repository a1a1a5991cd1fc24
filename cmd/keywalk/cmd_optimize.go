package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keywalk/keywalk/config"
	"github.com/keywalk/keywalk/corpus"
	"github.com/keywalk/keywalk/fitness"
	"github.com/keywalk/keywalk/genetic"
)

var (
	optInput      string
	optOutput     string
	optPopulation int
	optGens       int
	optSeed       int64
	optCxRate     float64
	optMutRate    float64
	optElitism    int
	optTournament int
	optWorkers    int
	optStall      int
	optSelection  string
	optCrossover  string
	optMutation   string
	optFoldCase   bool
)

// progressEvery throttles generation reporting on the console.
const progressEvery = 25

// optimizeCmd runs the evolutionary search
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Evolve a layout against a training corpus",
	Long: `Scans the training file, builds the travel-cost model for the selected
layout geometry, and runs the genetic search.

The best arrangement found is printed (or written to --output) in the same
bracketed row format that 'keywalk show' uses.

Example:
  keywalk optimize --input typing.log --population 200 --generations 500 --seed 7`,
	RunE: runOptimize,
}

func init() {
	f := optimizeCmd.Flags()
	f.StringVarP(&optInput, "input", "i", "", "Training text file (keylogger dump)")
	f.StringVarP(&optOutput, "output", "o", "", "Write the best layout here (default: stdout)")
	f.IntVarP(&optPopulation, "population", "p", genetic.DefaultOptions().PopulationSize, "Population size")
	f.IntVarP(&optGens, "generations", "g", genetic.DefaultOptions().Generations, "Maximum generations")
	f.Int64VarP(&optSeed, "seed", "s", 0, "Random seed (0 = fixed default stream)")
	f.Float64Var(&optCxRate, "crossover-rate", genetic.DefaultOptions().CrossoverRate, "Crossover probability")
	f.Float64Var(&optMutRate, "mutation-rate", genetic.DefaultOptions().MutationRate, "Mutation probability")
	f.IntVar(&optElitism, "elitism", genetic.DefaultOptions().Elitism, "Individuals copied unchanged per generation")
	f.IntVar(&optTournament, "tournament", genetic.DefaultOptions().TournamentSize, "Tournament sample size")
	f.IntVar(&optWorkers, "workers", 0, "Parallel fitness workers (0 = all CPUs)")
	f.IntVar(&optStall, "stall", genetic.DefaultOptions().StallLimit, "Stop after N generations without improvement (0 = off)")
	f.StringVar(&optSelection, "selection", "tournament", "Selection operator (tournament|roulette)")
	f.StringVar(&optCrossover, "crossover", "ox", "Crossover operator (ox|pmx)")
	f.StringVar(&optMutation, "mutation", "swap", "Mutation operator (swap|inversion)")
	f.BoolVar(&optFoldCase, "fold-case", false, "Lowercase the corpus before counting")

	_ = optimizeCmd.MarkFlagRequired("input")
}

// geneticOptions merges config-file values with explicitly set flags.
func geneticOptions(cmd *cobra.Command) (genetic.Options, error) {
	opts, err := cfg.GeneticOptions()
	if err != nil {
		return genetic.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("population") {
		opts.PopulationSize = optPopulation
	}
	if flags.Changed("generations") {
		opts.Generations = optGens
	}
	if flags.Changed("seed") {
		opts.Seed = optSeed
	}
	if flags.Changed("crossover-rate") {
		opts.CrossoverRate = optCxRate
	}
	if flags.Changed("mutation-rate") {
		opts.MutationRate = optMutRate
	}
	if flags.Changed("elitism") {
		opts.Elitism = optElitism
	}
	if flags.Changed("tournament") {
		opts.TournamentSize = optTournament
	}
	if flags.Changed("workers") {
		opts.Workers = optWorkers
	}
	if flags.Changed("stall") {
		opts.StallLimit = optStall
	}
	if flags.Changed("selection") {
		if opts.Selection, err = config.ParseSelection(optSelection); err != nil {
			return genetic.Options{}, err
		}
	}
	if flags.Changed("crossover") {
		if opts.Crossover, err = config.ParseCrossover(optCrossover); err != nil {
			return genetic.Options{}, err
		}
	}
	if flags.Changed("mutation") {
		if opts.Mutation, err = config.ParseMutation(optMutation); err != nil {
			return genetic.Options{}, err
		}
	}

	return opts, nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	copts := cfg.CorpusOptions()
	if cmd.Flags().Changed("fold-case") {
		copts.FoldCase = optFoldCase
	}

	stats, err := corpus.ScanFile(optInput, copts)
	if err != nil {
		return err
	}
	if err = stats.Validate(); err != nil {
		return fmt.Errorf("%s: %w", optInput, err)
	}
	log.Info("corpus scanned",
		zap.String("input", optInput),
		zap.Int("chars", stats.TotalChars),
		zap.Int("words", stats.Words),
		zap.Int("distinct_bigrams", len(stats.Bigrams)))

	lay, g, err := buildGeometry()
	if err != nil {
		return err
	}
	log.Info("geometry built",
		zap.String("layout", cfg.Layout),
		zap.Int("keys", g.NumKeys()),
		zap.Int("typeable", lay.NumTypeable()))

	ev, err := fitness.NewEvaluator(g, stats, cfg.Weights)
	if err != nil {
		return err
	}

	opts, err := geneticOptions(cmd)
	if err != nil {
		return err
	}
	opts.OnGeneration = func(gen int, best genetic.Individual) {
		if gen%progressEvery == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "generation %d: fitness %.6f\n", gen, best.Fitness)
		}
	}

	eng, err := genetic.NewEngine(ev, opts, log)
	if err != nil {
		return err
	}

	res, err := eng.Run(ctx, lay.Chars())
	if err != nil {
		return err
	}

	best, err := lay.WithChars(res.Best.Genome)
	if err != nil {
		return err
	}

	log.Info("optimization finished",
		zap.Int("generations", res.Generations),
		zap.Bool("stalled", res.Stalled),
		zap.Float64("fitness", res.Best.Fitness),
		zap.Float64("avg_cost", ev.Cost(res.Best.Genome)))

	out, done, err := openOutput(optOutput)
	if err != nil {
		return err
	}
	defer done()

	fmt.Fprintf(cmd.OutOrStdout(), "best fitness %.6f (avg travel cost %.4f) after %d generations\n",
		res.Best.Fitness, ev.Cost(res.Best.Genome), res.Generations)
	_, err = fmt.Fprintln(out, best.String())

	return err
}
