// Command graphkey is the CLI harness around the canonical-labeling
// engine: computing keys for graphs read from disk, comparing two graphs
// for isomorphism by key equality, and benchmarking the engine against
// random graphs, mirroring original_source/src/main.rs's three timed
// phases.
package main

import "github.com/jaxan-go/graphkey/cmd/graphkey/cmd"

func main() {
	cmd.Execute()
}
