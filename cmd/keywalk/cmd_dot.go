package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dotOutput string

// dotCmd renders the position graph in Graphviz dot format
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print the key position graph in Graphviz dot format",
	Long: `Builds the position graph for the selected layout geometry and writes
it as an undirected Graphviz graph. Pipe it to dot to inspect the model:

  keywalk dot --layout azerty --connectivity 8 | dot -Tsvg -o keys.svg`,
	RunE: runDot,
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "Write dot output here (default: stdout)")
}

func runDot(cmd *cobra.Command, args []string) error {
	_, g, err := buildGeometry()
	if err != nil {
		return err
	}
	logger.Debug("rendering graph", zap.Int("keys", g.NumKeys()))

	out, done, err := openOutput(dotOutput)
	if err != nil {
		return err
	}
	defer done()

	return g.DOT(out)
}
