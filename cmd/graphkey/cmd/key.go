package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaxan-go/graphkey"
)

var keyCmd = &cobra.Command{
	Use:   "key <edge-list-file>",
	Short: "Print the canonical key of a graph read from an edge-list file",
	Args:  cobra.ExactArgs(1),
	RunE:  runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	log := Logger()

	log.Debug("reading edge list from %s", args[0])
	g, err := readEdgeList(args[0])
	if err != nil {
		log.Warn("failed to read %s: %v", args[0], err)
		return err
	}
	log.Info("loaded graph with %d nodes and %d edges", g.NodeCount(), len(g.Edges()))

	start := time.Now()
	k := graphkey.New(g)
	log.Debug("computed key in %s", time.Since(start))

	fmt.Printf("nodes:      %d\n", g.NodeCount())
	fmt.Printf("descriptor: %v\n", k.Descriptor())
	return nil
}
