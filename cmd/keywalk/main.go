// Command keywalk optimizes keyboard layouts against recorded typing data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/keywalk/keywalk/config"
	"github.com/keywalk/keywalk/keygraph"
	"github.com/keywalk/keywalk/layout"
)

var (
	// Global flags
	cfgPath         string
	verbose         bool
	layoutName      string
	connectivity    string
	stepWeight      int64
	modeShiftWeight int64

	// Resolved per invocation in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "keywalk",
	Short: "keywalk - evolutionary keyboard layout optimizer",
	Long: `keywalk models a keyboard as a weighted graph of key positions and
searches for character arrangements that minimize finger travel over a
training corpus (for example a keylogger dump of your own typing).

Travel costs come from shortest paths on the position graph; a genetic
algorithm then permutes characters over the typeable positions and keeps
the arrangements the corpus scores best.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return loadConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadConfig resolves the run configuration: file (when given) over
// defaults, then persistent flag overrides on top.
func loadConfig(cmd *cobra.Command) error {
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", cfgPath))
	} else {
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("layout") {
		cfg.Layout = layoutName
	}
	if flags.Changed("connectivity") {
		cfg.Graph.Connectivity = connectivity
	}
	if flags.Changed("step-weight") {
		cfg.Graph.StepWeight = stepWeight
	}
	if flags.Changed("mode-shift-weight") {
		cfg.Graph.ModeShiftWeight = modeShiftWeight
	}

	return cfg.Validate()
}

// buildGeometry constructs the layout and its position graph from cfg.
func buildGeometry() (*layout.Layout, *keygraph.Graph, error) {
	lay, err := layout.Preset(cfg.Layout)
	if err != nil {
		return nil, nil, err
	}

	gopts, err := cfg.GraphOptions()
	if err != nil {
		return nil, nil, err
	}

	g, err := keygraph.Build(lay, gopts...)
	if err != nil {
		return nil, nil, err
	}

	return lay, g, nil
}

// openOutput returns stdout for "", otherwise creates the file.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}

	return f, func() { _ = f.Close() }, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "YAML config file (flags override it)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVarP(&layoutName, "layout", "l", layout.PresetQWERTY, "Layout preset (qwerty|azerty)")
	pf.StringVar(&connectivity, "connectivity", "4", "Key adjacency: 4 (orthogonal) or 8 (with diagonals)")
	pf.Int64Var(&stepWeight, "step-weight", keygraph.DefaultOptions().StepWeight, "Cost of moving to an adjacent key")
	pf.Int64Var(&modeShiftWeight, "mode-shift-weight", keygraph.DefaultOptions().ModeShiftWeight, "Cost of switching layers (e.g. shift)")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
